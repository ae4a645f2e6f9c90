// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"code.hybscloud.com/netio/iobuf"
	"code.hybscloud.com/netio/netaddr"
)

// StreamSocket is a connection-oriented socket (TCP, or a stream-type
// Unix domain socket on platforms that support it). It embeds *Socket
// and adds Accept for sockets in the Listening state.
type StreamSocket struct {
	*Socket
}

// newStreamSocket allocates a StreamSocket for the given family.
func newStreamSocket(family netaddr.Family) (*StreamSocket, error) {
	s, err := newSocket(family, netaddr.Stream)
	if err != nil {
		return nil, err
	}
	return &StreamSocket{Socket: s}, nil
}

// create wraps an already-connected descriptor (as produced by Accept)
// into a new StreamSocket in the given state, with the given blocking
// flag already applied to the descriptor.
func create(fd descriptor, family netaddr.Family, state State, blocking bool) *StreamSocket {
	return &StreamSocket{Socket: &Socket{
		fd:       fd,
		state:    state,
		blocking: blocking,
		family:   family,
		sockType: netaddr.Stream,
		readBuf:  iobuf.NewBuffer[byte](),
		writeBuf: iobuf.NewBuffer[byte](),
	}}
}

// Accept accepts one pending connection on a Listening socket.
func (s *StreamSocket) Accept() (*StreamSocket, netaddr.SocketAddress, error) {
	s.mu.Lock()
	if s.state != Listening {
		s.mu.Unlock()
		return nil, netaddr.SocketAddress{}, ErrInvalidState
	}
	fd := s.fd
	family := s.family
	blocking := s.blocking
	s.mu.Unlock()

	nfd, peer, err := fd.accept()
	if err != nil {
		return nil, netaddr.SocketAddress{}, err
	}
	return create(nfd, family, Connected, blocking), peer, nil
}

// Fill reads as many bytes as are immediately available (in non-blocking
// mode) or exactly one syscall's worth (in blocking mode) into the read
// buffer, without consuming them.
func (s *StreamSocket) Fill() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var scratch [recvScratchSize]byte
	n, err := s.fd.read(scratch[:])
	if n > 0 {
		s.readBuf.WriteSlice(scratch[:n])
	}
	return n, err
}

// Read copies up to len(p) already-buffered bytes into p, filling the
// buffer from the network first if it is currently empty.
func (s *StreamSocket) Read(p []byte) (int, error) {
	s.mu.Lock()
	empty := s.readBuf.Empty()
	s.mu.Unlock()
	if empty {
		if _, err := s.Fill(); err != nil {
			return 0, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readBuf.ReadInto(len(p), p), nil
}

// Write buffers p for sending; call Flush to push it onto the network.
func (s *StreamSocket) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeBuf.WriteSlice(p)
	s.didWrite = true
	return len(p), nil
}

// Flush sends every buffered, unsent byte.
func (s *StreamSocket) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var flushErr error
	for s.writeBuf.Len() > 0 {
		n := s.writeBuf.ReadFunc(s.writeBuf.Len(), func(a, c []byte) int {
			written, err := s.fd.write(a)
			if err != nil {
				flushErr = err
				return written
			}
			if written < len(a) {
				return written
			}
			more, err := s.fd.write(c)
			if err != nil {
				flushErr = err
				return written + more
			}
			return written + more
		})
		if n == 0 {
			break
		}
		if flushErr != nil {
			return flushErr
		}
	}
	return nil
}
