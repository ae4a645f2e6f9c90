// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import "code.hybscloud.com/netio/netaddr"

// UDPSocket returns a new, unbound DatagramSocket fixed to UDP over the
// given address family.
func UDPSocket(family netaddr.Family) (*DatagramSocket, error) {
	return newDatagramSocket(family)
}

// BindUDP binds a UDPSocket to addr.
func BindUDP(addr netaddr.SocketAddress) (*DatagramSocket, error) {
	family := addr.Family()
	if family == netaddr.Unspecified {
		family = netaddr.IPv4
	}
	s, err := UDPSocket(family)
	if err != nil {
		return nil, err
	}
	if err := s.Bind(addr); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
