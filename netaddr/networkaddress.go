// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netaddr

import (
	"context"
	"net"
	"strconv"
)

// NetworkAddress is a hostname plus an optional port that may or may not
// yet have been resolved to one or more concrete SocketAddress values.
type NetworkAddress struct {
	Host string
	Addr SocketAddress

	resolved bool
}

// ParseNetworkAddress parses s as a "host:port" pair. If s is already a
// literal IP address, the returned NetworkAddress is pre-resolved and
// Resolve returns it without a lookup.
func ParseNetworkAddress(s string) NetworkAddress {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		na := NetworkAddress{Host: s}
		if addr := socketAddressFromString(s); addr.family != Unspecified {
			na.Addr = addr
			na.resolved = true
		}
		return na
	}
	port, _ := parsePort(portStr)
	na := NetworkAddress{Host: host}
	if addr := socketAddressFromString(host); addr.family != Unspecified {
		na.Addr = addr.WithPort(port)
		na.resolved = true
	} else {
		na.Addr = SocketAddress{port: port}
	}
	return na
}

// Resolved reports whether Resolve can satisfy this address without a
// network lookup.
func (na NetworkAddress) Resolved() bool { return na.resolved }

// Resolve returns the SocketAddress values na's host resolves to. typ is
// accepted but does not affect the result. A pre-resolved literal address
// is returned without a lookup; otherwise it delegates to
// net.DefaultResolver.LookupIPAddr.
func (na NetworkAddress) Resolve(ctx context.Context, typ Type) ([]SocketAddress, error) {
	_ = typ
	if na.resolved {
		return []SocketAddress{na.Addr}, nil
	}
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, na.Host)
	if err != nil {
		return nil, err
	}
	out := make([]SocketAddress, 0, len(ips))
	for _, ip := range ips {
		out = append(out, SocketAddressFromNetIP(ip.IP, na.Addr.port))
	}
	return out, nil
}

// String renders na as "host:port".
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(int(na.Addr.port)))
}

// Interfaces enumerates the local machine's configured addresses,
// optionally filtered to a single family and optionally excluding
// loopback addresses. It is one of the few places this module defers
// entirely to net's platform-specific interface enumeration rather than
// a syscall-level implementation; see this repository's DESIGN.md.
func Interfaces(typeFilter Family, includeLoopback bool) ([]SocketAddress, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, err
	}
	out := make([]SocketAddress, 0, len(addrs))
	for _, a := range addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		sa := SocketAddressFromNetIP(ipNet.IP, 0)
		if typeFilter != Unspecified && sa.family != typeFilter {
			continue
		}
		if !includeLoopback && sa.IsLoopback() {
			continue
		}
		out = append(out, sa)
	}
	return out, nil
}
