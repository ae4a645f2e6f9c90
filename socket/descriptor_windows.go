//go:build windows

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"sync"

	"golang.org/x/sys/windows"

	"code.hybscloud.com/netio/netaddr"
	"code.hybscloud.com/netio/sockerr"
)

var wsaInit sync.Once

func ensureWSAStartup() {
	wsaInit.Do(func() {
		var data windows.WSAData
		_ = windows.WSAStartup(uint32(0x0202), &data)
	})
}

// descriptor wraps a raw Winsock socket handle.
type descriptor struct {
	h windows.Handle
}

const invalidFD = windows.InvalidHandle

func newDescriptor(family netaddr.Family, typ netaddr.Type) (descriptor, error) {
	ensureWSAStartup()
	domain, err := windowsDomain(family)
	if err != nil {
		return descriptor{invalidFD}, err
	}
	sockType, proto := windowsTypeAndProto(typ)
	h, err := windows.Socket(domain, sockType, proto)
	if err != nil {
		return descriptor{invalidFD}, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return descriptor{h}, nil
}

func windowsDomain(family netaddr.Family) (int, error) {
	switch family {
	case netaddr.IPv4:
		return windows.AF_INET, nil
	case netaddr.IPv6:
		return windows.AF_INET6, nil
	default:
		return 0, ErrInvalidArgument
	}
}

func windowsTypeAndProto(typ netaddr.Type) (int, int) {
	if typ == netaddr.Datagram {
		return windows.SOCK_DGRAM, windows.IPPROTO_UDP
	}
	return windows.SOCK_STREAM, windows.IPPROTO_TCP
}

func toWindowsErrno(err error) windows.Errno {
	if errno, ok := err.(windows.Errno); ok {
		return errno
	}
	return windows.Errno(0)
}

func (d descriptor) valid() bool { return d.h != invalidFD }

func (d descriptor) setNonblock(nonblocking bool) error {
	v := uint32(0)
	if nonblocking {
		v = 1
	}
	if err := windows.SetNonblock(d.h, v != 0); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) setReuseAddr() error {
	if err := windows.SetsockoptInt(d.h, windows.SOL_SOCKET, windows.SO_REUSEADDR, 1); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) setBroadcast() error {
	if err := windows.SetsockoptInt(d.h, windows.SOL_SOCKET, windows.SO_BROADCAST, 1); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) bind(addr netaddr.SocketAddress) error {
	sa, err := toSockaddr(addr)
	if err != nil {
		return err
	}
	if err := windows.Bind(d.h, sa); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) connect(addr netaddr.SocketAddress) error {
	sa, err := toSockaddr(addr)
	if err != nil {
		return err
	}
	if err := windows.Connect(d.h, sa); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) listen(backlog int) error {
	if err := windows.Listen(d.h, backlog); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) accept() (descriptor, netaddr.SocketAddress, error) {
	nh, sa, err := windows.Accept(d.h)
	if err != nil {
		return descriptor{invalidFD}, netaddr.SocketAddress{}, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return descriptor{nh}, fromSockaddr(sa), nil
}

func (d descriptor) read(p []byte) (int, error) {
	n, err := windows.Read(d.h, p)
	if err != nil {
		return n, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return n, nil
}

func (d descriptor) write(p []byte) (int, error) {
	n, err := windows.Write(d.h, p)
	if err != nil {
		return n, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return n, nil
}

func (d descriptor) recvfrom(p []byte) (int, netaddr.SocketAddress, bool, error) {
	n, sa, err := windows.Recvfrom(d.h, p, 0)
	if err != nil {
		return n, netaddr.SocketAddress{}, false, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	// Winsock reports truncation via WSAEMSGSIZE rather than a flag on a
	// successful return, so a successful Recvfrom here never truncated.
	return n, fromSockaddr(sa), false, nil
}

func (d descriptor) sendto(p []byte, addr netaddr.SocketAddress) (int, error) {
	sa, err := toSockaddr(addr)
	if err != nil {
		return 0, err
	}
	if err := windows.Sendto(d.h, p, 0, sa); err != nil {
		return 0, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return len(p), nil
}

func (d descriptor) shutdown(how int) error {
	if err := windows.Shutdown(d.h, how); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func (d descriptor) localAddr() (netaddr.SocketAddress, error) {
	sa, err := windows.Getsockname(d.h)
	if err != nil {
		return netaddr.SocketAddress{}, sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return fromSockaddr(sa), nil
}

func (d descriptor) close() error {
	if err := windows.Closesocket(d.h); err != nil {
		return sockerr.NewWindowsError(toWindowsErrno(err))
	}
	return nil
}

func toSockaddr(addr netaddr.SocketAddress) (windows.Sockaddr, error) {
	switch addr.Family() {
	case netaddr.IPv4:
		var sa windows.SockaddrInet4
		ip := addr.IP().To4()
		copy(sa.Addr[:], ip)
		sa.Port = int(addr.Port())
		return &sa, nil
	case netaddr.IPv6:
		var sa windows.SockaddrInet6
		ip := addr.IP().To16()
		copy(sa.Addr[:], ip)
		sa.Port = int(addr.Port())
		return &sa, nil
	default:
		return nil, ErrInvalidArgument
	}
}

func fromSockaddr(sa windows.Sockaddr) netaddr.SocketAddress {
	switch v := sa.(type) {
	case *windows.SockaddrInet4:
		return netaddr.SocketAddressFromNetIP(v.Addr[:], uint16(v.Port))
	case *windows.SockaddrInet6:
		return netaddr.SocketAddressFromNetIP(v.Addr[:], uint16(v.Port))
	default:
		return netaddr.SocketAddress{}
	}
}

const (
	shutRD   = windows.SHUT_RD
	shutWR   = windows.SHUT_WR
	shutRDWR = windows.SHUT_RDWR
)
