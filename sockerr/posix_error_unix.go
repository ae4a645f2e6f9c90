//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

import "golang.org/x/sys/unix"

// POSIXError wraps a raw POSIX errno returned by a socket syscall.
type POSIXError struct {
	Errno unix.Errno
}

// NewPOSIXError wraps errno, or returns nil if errno is zero (success).
func NewPOSIXError(errno unix.Errno) error {
	if errno == 0 {
		return nil
	}
	return &POSIXError{Errno: errno}
}

func (e *POSIXError) Error() string { return "sockerr: " + e.Errno.Error() }

func (e *POSIXError) Unwrap() error { return e.Errno }

func (e *POSIXError) classify() Category {
	switch e.Errno {
	case unix.EAGAIN, unix.EINTR, unix.EINPROGRESS, unix.EALREADY:
		return Transient
	case unix.ECONNRESET, unix.EPIPE, unix.ECONNABORTED, unix.ECONNREFUSED, unix.ETIMEDOUT:
		return RemoteInitiated
	case unix.EADDRINUSE, unix.EADDRNOTAVAIL, unix.EACCES, unix.EINVAL, unix.EAFNOSUPPORT:
		return LocalConfiguration
	case unix.EMFILE, unix.ENFILE, unix.ENOBUFS, unix.ENOMEM:
		return Resource
	default:
		return Unknown
	}
}
