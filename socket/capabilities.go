// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"context"

	"code.hybscloud.com/netio/netaddr"
)

// Binder binds a socket to a local address.
type Binder interface {
	Bind(addr netaddr.SocketAddress) error
}

// Connector connects a socket to a remote address.
type Connector interface {
	Connect(ctx context.Context, addr netaddr.SocketAddress) error
}

// Reader reads bytes already received into the socket's read buffer.
type Reader interface {
	Read(p []byte) (int, error)
}

// Writer writes bytes, buffering them until Flush sends them. Fill and
// Read do not flush.
type Writer interface {
	Write(p []byte) (int, error)
}

// Filler pulls more bytes from the network into the read buffer without
// necessarily returning any to the caller, used to drive non-blocking
// read loops.
type Filler interface {
	Fill() (int, error)
}

// Flusher pushes any buffered, unsent write data onto the network.
type Flusher interface {
	Flush() error
}

// Pending reports how much unread or unsent data a socket is currently
// holding in its buffers.
type Pending interface {
	PendingRead() int
	PendingWrite() int
}

// Closer closes a socket's underlying descriptor.
type Closer interface {
	Close() error
}
