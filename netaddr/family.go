// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netaddr

// Family identifies an address family.
type Family uint8

const (
	Unspecified Family = iota
	IPv4
	IPv6
)

// String returns a lowercase family name.
func (f Family) String() string {
	switch f {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "unspecified"
	}
}

// Type identifies the socket type a NetworkAddress is resolved for.
type Type uint8

const (
	Stream Type = iota
	Datagram
)

// String returns a lowercase type name.
func (t Type) String() string {
	switch t {
	case Datagram:
		return "datagram"
	default:
		return "stream"
	}
}
