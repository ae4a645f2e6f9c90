//go:build windows

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sockerr

import "golang.org/x/sys/windows"

// WindowsError wraps a raw Winsock error code returned by a socket call.
type WindowsError struct {
	Errno windows.Errno
}

// NewWindowsError wraps errno, or returns nil if errno is zero (success).
func NewWindowsError(errno windows.Errno) error {
	if errno == 0 {
		return nil
	}
	return &WindowsError{Errno: errno}
}

func (e *WindowsError) Error() string { return "sockerr: " + e.Errno.Error() }

func (e *WindowsError) Unwrap() error { return e.Errno }

func (e *WindowsError) classify() Category {
	switch e.Errno {
	case windows.WSAEWOULDBLOCK, windows.WSAEINTR, windows.WSAEINPROGRESS, windows.WSAEALREADY:
		return Transient
	case windows.WSAECONNRESET, windows.WSAECONNABORTED, windows.WSAECONNREFUSED, windows.WSAETIMEDOUT:
		return RemoteInitiated
	case windows.WSAEADDRINUSE, windows.WSAEADDRNOTAVAIL, windows.WSAEACCES, windows.WSAEINVAL, windows.WSAEAFNOSUPPORT:
		return LocalConfiguration
	case windows.WSAEMFILE, windows.WSAENOBUFS:
		return Resource
	default:
		return Unknown
	}
}
