// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"code.hybscloud.com/netio/netaddr"
)

// DatagramSocket is a connectionless, message-boundary-preserving socket
// (UDP, or a datagram-type Unix domain socket). It embeds *Socket and
// adds SendTo/ReceiveFrom for unconnected use alongside the inherited
// Read/Write for Connect-then-use.
type DatagramSocket struct {
	*Socket
}

func newDatagramSocket(family netaddr.Family) (*DatagramSocket, error) {
	s, err := newSocket(family, netaddr.Datagram)
	if err != nil {
		return nil, err
	}
	return &DatagramSocket{Socket: s}, nil
}

// SendTo sends p as a single datagram to addr, bypassing any connected
// peer. A descriptor is created lazily if the socket is still invalid,
// the same way Bind and Connect do; the OS assigns an ephemeral local
// port on first use.
func (s *DatagramSocket) SendTo(p []byte, addr netaddr.SocketAddress) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDescriptor(); err != nil {
		return 0, err
	}
	return s.fd.sendto(p, addr)
}

// ReceiveFrom receives a single datagram into p and reports its sender.
// The datagram is received into a 65535-byte scratch buffer and copied
// into p. If it was larger than len(p), or the kernel reports it
// truncated, the excess is discarded and ReceiveFrom returns ErrTruncated
// alongside the bytes that did fit, rather than silently returning a
// short read.
func (s *DatagramSocket) ReceiveFrom(p []byte) (int, netaddr.SocketAddress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDescriptor(); err != nil {
		return 0, netaddr.SocketAddress{}, err
	}
	var scratch [recvScratchSize]byte
	n, from, truncated, err := s.fd.recvfrom(scratch[:])
	if err != nil {
		return n, from, err
	}
	copied := copy(p, scratch[:n])
	if truncated || copied < n {
		return copied, from, ErrTruncated
	}
	return copied, from, nil
}

// Write sends p as a single datagram to the socket's connected peer. The
// socket must already be Connected (see Socket.Connect).
func (s *DatagramSocket) Write(p []byte) (int, error) {
	s.mu.Lock()
	fd := s.fd
	s.mu.Unlock()
	return fd.write(p)
}

// Read receives a single datagram from the socket's connected peer into
// p, following the same truncation behavior as ReceiveFrom.
func (s *DatagramSocket) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var scratch [recvScratchSize]byte
	n, err := s.fd.read(scratch[:])
	if err != nil {
		return n, err
	}
	copied := copy(p, scratch[:n])
	if copied < n {
		return copied, ErrTruncated
	}
	return copied, nil
}
