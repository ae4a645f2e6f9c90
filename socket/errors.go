// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import "errors"

var (
	// ErrInvalidArgument reports a nil or otherwise invalid argument.
	ErrInvalidArgument = errors.New("socket: invalid argument")

	// ErrInvalidState reports that the requested operation does not apply
	// to the socket's current State.
	ErrInvalidState = errors.New("socket: invalid state for operation")

	// ErrClosed reports an operation attempted on a socket that has
	// already been closed.
	ErrClosed = errors.New("socket: use of closed socket")

	// ErrTruncated reports that an incoming datagram was larger than the
	// caller's buffer and the excess bytes were discarded. This
	// is a deliberate, explicit signal rather than silently returning the
	// shortened payload.
	ErrTruncated = errors.New("socket: datagram truncated")
)
