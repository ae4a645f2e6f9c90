//go:build !windows

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

// WindowsError exists on non-windows builds only so that cross-platform
// code (Classify's errors.As check) compiles uniformly; it is never
// constructed on this platform.
type WindowsError struct {
	Errno int32
}

func (e *WindowsError) Error() string {
	return "sockerr: windows error unavailable on this platform"
}

func (e *WindowsError) classify() Category { return Unknown }
