//go:build !unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

// POSIXError exists on non-unix builds only so that cross-platform code
// (Classify's errors.As check) compiles uniformly; it is never
// constructed on this platform.
type POSIXError struct {
	Errno int32
}

func (e *POSIXError) Error() string { return "sockerr: posix error unavailable on this platform" }

func (e *POSIXError) classify() Category { return Unknown }
