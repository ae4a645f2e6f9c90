// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import "code.hybscloud.com/netio/netaddr"

// TCPSocket returns a new, unbound, unconnected StreamSocket fixed to
// TCP over the given address family.
func TCPSocket(family netaddr.Family) (*StreamSocket, error) {
	return newStreamSocket(family)
}

// ListenTCP binds a TCPSocket to addr and puts it into the Listening
// state with the given backlog.
func ListenTCP(addr netaddr.SocketAddress, backlog int) (*StreamSocket, error) {
	family := addr.Family()
	if family == netaddr.Unspecified {
		family = netaddr.IPv4
	}
	s, err := TCPSocket(family)
	if err != nil {
		return nil, err
	}
	if err := s.Bind(addr); err != nil {
		_ = s.Close()
		return nil, err
	}
	if err := s.Listen(backlog); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
