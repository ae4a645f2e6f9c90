// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netaddr

import (
	"net"
	"net/netip"
	"strconv"

	"code.hybscloud.com/netio/internal/bo"
)

// SocketAddress is a fixed-size, copyable address value able to hold
// either an IPv4 or an IPv6 endpoint and a port. The zero value is the
// unspecified address on port 0.
type SocketAddress struct {
	family Family
	bytes  [16]byte // IPv4 uses the first 4 bytes; IPv6 uses all 16
	port   uint16
}

// ParseSocketAddress parses s, which may be a bare IP address, an
// "ip:port" pair, or a bracketed "[ip]:port" IPv6 pair. On any parse
// failure it returns the zero SocketAddress. A port component that is
// non-numeric, empty, or out of the 0-65535 range makes the whole
// address unspecified, rather than being silently truncated or ignored.
func ParseSocketAddress(s string) SocketAddress {
	if host, portStr, err := net.SplitHostPort(s); err == nil {
		p, ok := parsePort(portStr)
		if !ok {
			return SocketAddress{}
		}
		addr := socketAddressFromString(host)
		if addr.family != Unspecified {
			addr.port = p
		}
		return addr
	}
	return socketAddressFromString(s)
}

func parsePort(s string) (uint16, bool) {
	if s == "" || len(s) > 5 {
		return 0, false
	}
	v := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	if v > 65535 {
		return 0, false
	}
	return uint16(v), true
}

func socketAddressFromString(s string) SocketAddress {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return SocketAddress{}
	}
	return SocketAddressFromNetIP(net.IP(addr.AsSlice()), 0)
}

// SocketAddressFromIPv4 builds an IPv4 SocketAddress from a 32-bit
// address in host byte order (10.0.0.1 is 0x0A000001) and a port. The
// value is converted to network byte order and stored in native memory
// order, the way an htonl'd in_addr is laid out.
func SocketAddressFromIPv4(raw uint32, port uint16) SocketAddress {
	var a SocketAddress
	a.family = IPv4
	bo.Native().PutUint32(a.bytes[:4], bo.ToNetwork32(raw))
	a.port = port
	return a
}

// SocketAddressFromNetIP builds a SocketAddress from a net.IP and a port.
// A nil or invalid ip yields the unspecified family.
func SocketAddressFromNetIP(ip net.IP, port uint16) SocketAddress {
	var a SocketAddress
	a.port = port
	if v4 := ip.To4(); v4 != nil {
		a.family = IPv4
		copy(a.bytes[:4], v4)
		return a
	}
	if v6 := ip.To16(); v6 != nil {
		a.family = IPv6
		copy(a.bytes[:], v6)
		return a
	}
	return a
}

// Family reports the address family.
func (a SocketAddress) Family() Family { return a.family }

// IP returns the address as a net.IP, or nil if the family is
// Unspecified.
func (a SocketAddress) IP() net.IP {
	switch a.family {
	case IPv4:
		ip := make(net.IP, 4)
		copy(ip, a.bytes[:4])
		return ip
	case IPv6:
		ip := make(net.IP, 16)
		copy(ip, a.bytes[:])
		return ip
	default:
		return nil
	}
}

// Port returns the port.
func (a SocketAddress) Port() uint16 { return a.port }

// PortOr returns the port, or def if the port is zero.
func (a SocketAddress) PortOr(def uint16) uint16 {
	if a.port == 0 {
		return def
	}
	return a.port
}

// WithPort returns a copy of a with the port set to p.
func (a SocketAddress) WithPort(p uint16) SocketAddress {
	a.port = p
	return a
}

// SetPort sets the port in place.
func (a *SocketAddress) SetPort(p uint16) { a.port = p }

// IsAny reports whether a is the wildcard address (0.0.0.0 or ::),
// regardless of port.
func (a SocketAddress) IsAny() bool {
	for _, b := range a.bytes {
		if b != 0 {
			return false
		}
	}
	return a.family != Unspecified
}

// IsBroadcast reports whether a is the IPv4 limited broadcast address,
// 255.255.255.255. IPv6 has no broadcast address and always reports false.
func (a SocketAddress) IsBroadcast() bool {
	if a.family != IPv4 {
		return false
	}
	for _, b := range a.bytes[:4] {
		if b != 0xff {
			return false
		}
	}
	return true
}

// IsLoopback reports whether a is a loopback address (127.0.0.0/8 or ::1).
func (a SocketAddress) IsLoopback() bool {
	switch a.family {
	case IPv4:
		return a.bytes[0] == 127
	case IPv6:
		for i := 0; i < 15; i++ {
			if a.bytes[i] != 0 {
				return false
			}
		}
		return a.bytes[15] == 1
	default:
		return false
	}
}

// String renders a as "ip:port", bracketing IPv6 addresses.
func (a SocketAddress) String() string {
	ip := a.IP()
	host := ""
	if ip != nil {
		host = ip.String()
	}
	return net.JoinHostPort(host, strconv.Itoa(int(a.port)))
}
