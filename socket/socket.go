// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"context"
	"sync"

	"code.hybscloud.com/netio/iobuf"
	"code.hybscloud.com/netio/netaddr"
)

const recvScratchSize = 65535

// Socket is the shared state machine and buffering core for StreamSocket
// and DatagramSocket. It is never constructed directly by callers; use
// TCPSocket or UDPSocket.
type Socket struct {
	mu sync.Mutex

	fd       descriptor
	state    State
	blocking bool
	didWrite bool

	family   netaddr.Family
	sockType netaddr.Type

	readBuf  *iobuf.Buffer[byte]
	writeBuf *iobuf.Buffer[byte]

	onConnected    func()
	onDisconnected func()
}

func newSocket(family netaddr.Family, typ netaddr.Type) (*Socket, error) {
	s := &Socket{
		fd:       descriptor{invalidFD},
		state:    Invalid,
		blocking: true,
		family:   family,
		sockType: typ,
		readBuf:  iobuf.NewBuffer[byte](),
		writeBuf: iobuf.NewBuffer[byte](),
	}
	return s, nil
}

// State returns the socket's current lifecycle state.
func (s *Socket) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ensureDescriptor creates a descriptor of the socket's family and type
// if one does not already exist, reapplying the remembered non-blocking
// mode to it. A socket in the invalid state holds no descriptor; Bind
// and Connect call this to create one lazily, the moment it is needed.
func (s *Socket) ensureDescriptor() error {
	if s.fd.valid() {
		return nil
	}
	fd, err := newDescriptor(s.family, s.sockType)
	if err != nil {
		return err
	}
	if !s.blocking {
		if err := fd.setNonblock(true); err != nil {
			_ = fd.close()
			return err
		}
	}
	s.fd = fd
	return nil
}

// Bind binds the socket to addr, creating a descriptor first if the
// socket is currently invalid, setting SO_REUSEADDR (and, for IPv4
// datagram sockets, SO_BROADCAST best-effort), and transitions to Bound
// on success. Fails if the socket is already bound or connected.
func (s *Socket) Bind(addr netaddr.SocketAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Invalid {
		return ErrInvalidState
	}
	if err := s.ensureDescriptor(); err != nil {
		return err
	}
	if err := s.fd.setReuseAddr(); err != nil {
		return err
	}
	if s.sockType == netaddr.Datagram && s.family == netaddr.IPv4 {
		_ = s.fd.setBroadcast() // best-effort; some platforms/process privileges reject this
	}
	if err := s.fd.bind(addr); err != nil {
		return err
	}
	s.state = Bound
	return nil
}

// Connect connects the socket to addr, creating a descriptor first if
// the socket is currently invalid. ctx is honored only insofar as it is
// already canceled at call time; the underlying connect is a single
// blocking (or non-blocking, per SetBlocking) syscall, not a cancelable
// one. On failure, if a descriptor had to be created for this call, it
// is closed so the socket is left invalid and descriptor-less again.
func (s *Socket) Connect(ctx context.Context, addr netaddr.SocketAddress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	createdHere := !s.fd.valid()
	if err := s.ensureDescriptor(); err != nil {
		return err
	}
	s.state = Connecting
	if err := s.fd.connect(addr); err != nil {
		if createdHere {
			_ = s.fd.close()
			s.fd = descriptor{invalidFD}
		}
		s.state = Invalid
		return err
	}
	s.state = Connected
	if s.onConnected != nil {
		s.onConnected()
	}
	return nil
}

// Listen transitions a Bound stream socket to Listening with the given
// backlog.
func (s *Socket) Listen(backlog int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Bound {
		return ErrInvalidState
	}
	if err := s.fd.listen(backlog); err != nil {
		return err
	}
	s.state = Listening
	return nil
}

// Shutdown shuts down the given halves of a connected socket (see
// ShutdownRead, ShutdownWrite, ShutdownBoth) without closing the
// descriptor.
func (s *Socket) Shutdown(how int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fd.shutdown(how)
}

const (
	ShutdownRead  = shutRD
	ShutdownWrite = shutWR
	ShutdownBoth  = shutRDWR
)

// Disconnect closes the socket's descriptor and returns it to the
// invalid state, then runs the disconnected hook. Buffered, unsent/
// unread bytes are dropped. A later Bind or Connect creates a fresh
// descriptor lazily, carrying forward the remembered blocking flag.
func (s *Socket) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Disconnecting
	if s.fd.valid() {
		if err := s.fd.close(); err != nil {
			return err
		}
		s.fd = descriptor{invalidFD}
	}
	s.readBuf.Clear()
	s.writeBuf.Clear()
	s.didWrite = false
	s.state = Invalid
	if s.onDisconnected != nil {
		s.onDisconnected()
	}
	return nil
}

// SetBlocking switches the socket's descriptor, if it has one, between
// blocking and non-blocking mode, remembering the flag so it is reapplied
// the next time ensureDescriptor lazily creates a descriptor (on the first
// Bind or Connect, or after a Disconnect or Close).
func (s *Socket) SetBlocking(blocking bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fd.valid() {
		if err := s.fd.setNonblock(!blocking); err != nil {
			return err
		}
	}
	s.blocking = blocking
	return nil
}

// LocalAddr returns the address the socket is currently bound to,
// including an ephemeral port assigned by Bind with port 0.
func (s *Socket) LocalAddr() (netaddr.SocketAddress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fd.localAddr()
}

// PendingRead returns the number of unread bytes buffered locally.
func (s *Socket) PendingRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readBuf.Len()
}

// PendingWrite returns the number of unsent bytes buffered locally.
func (s *Socket) PendingWrite() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeBuf.Len()
}

// Close closes the socket's underlying descriptor and transitions the
// socket to Invalid. It does not block on any buffered, unsent write
// data; call Flush first if that matters.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.fd.valid() {
		return ErrClosed
	}
	err := s.fd.close()
	s.fd = descriptor{invalidFD}
	s.state = Invalid
	return err
}
