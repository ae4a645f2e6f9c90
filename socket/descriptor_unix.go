//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket

import (
	"golang.org/x/sys/unix"

	"code.hybscloud.com/netio/netaddr"
	"code.hybscloud.com/netio/sockerr"
)

// descriptor wraps a raw POSIX file descriptor.
type descriptor struct {
	fd int
}

const invalidFD = -1

func newDescriptor(family netaddr.Family, typ netaddr.Type) (descriptor, error) {
	domain, err := unixDomain(family)
	if err != nil {
		return descriptor{invalidFD}, err
	}
	sockType, proto := unixTypeAndProto(typ)
	fd, err := unix.Socket(domain, sockType, proto)
	if err != nil {
		return descriptor{invalidFD}, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return descriptor{fd}, nil
}

func unixDomain(family netaddr.Family) (int, error) {
	switch family {
	case netaddr.IPv4:
		return unix.AF_INET, nil
	case netaddr.IPv6:
		return unix.AF_INET6, nil
	default:
		return 0, ErrInvalidArgument
	}
}

func unixTypeAndProto(typ netaddr.Type) (int, int) {
	if typ == netaddr.Datagram {
		return unix.SOCK_DGRAM, unix.IPPROTO_UDP
	}
	return unix.SOCK_STREAM, unix.IPPROTO_TCP
}

func (d descriptor) valid() bool { return d.fd >= 0 }

func (d descriptor) setNonblock(nonblocking bool) error {
	if err := unix.SetNonblock(d.fd, nonblocking); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) setReuseAddr() error {
	if err := unix.SetsockoptInt(d.fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) setBroadcast() error {
	if err := unix.SetsockoptInt(d.fd, unix.SOL_SOCKET, unix.SO_BROADCAST, 1); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) bind(addr netaddr.SocketAddress) error {
	sa, err := toSockaddr(addr)
	if err != nil {
		return err
	}
	if err := unix.Bind(d.fd, sa); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) connect(addr netaddr.SocketAddress) error {
	sa, err := toSockaddr(addr)
	if err != nil {
		return err
	}
	if err := unix.Connect(d.fd, sa); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) listen(backlog int) error {
	if err := unix.Listen(d.fd, backlog); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) accept() (descriptor, netaddr.SocketAddress, error) {
	nfd, sa, err := unix.Accept(d.fd)
	if err != nil {
		return descriptor{invalidFD}, netaddr.SocketAddress{}, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return descriptor{nfd}, fromSockaddr(sa), nil
}

func (d descriptor) read(p []byte) (int, error) {
	n, err := unix.Read(d.fd, p)
	if err != nil {
		return n, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return n, nil
}

func (d descriptor) write(p []byte) (int, error) {
	n, err := unix.Write(d.fd, p)
	if err != nil {
		return n, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return n, nil
}

func (d descriptor) recvfrom(p []byte) (int, netaddr.SocketAddress, bool, error) {
	n, _, flags, sa, err := unix.Recvmsg(d.fd, p, nil, 0)
	if err != nil {
		return n, netaddr.SocketAddress{}, false, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	truncated := flags&unix.MSG_TRUNC != 0
	return n, fromSockaddr(sa), truncated, nil
}

func (d descriptor) sendto(p []byte, addr netaddr.SocketAddress) (int, error) {
	sa, err := toSockaddr(addr)
	if err != nil {
		return 0, err
	}
	if err := unix.Sendto(d.fd, p, 0, sa); err != nil {
		return 0, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return len(p), nil
}

func (d descriptor) shutdown(how int) error {
	if err := unix.Shutdown(d.fd, how); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func (d descriptor) localAddr() (netaddr.SocketAddress, error) {
	sa, err := unix.Getsockname(d.fd)
	if err != nil {
		return netaddr.SocketAddress{}, sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return fromSockaddr(sa), nil
}

func (d descriptor) close() error {
	if err := unix.Close(d.fd); err != nil {
		return sockerr.NewPOSIXError(err.(unix.Errno))
	}
	return nil
}

func toSockaddr(addr netaddr.SocketAddress) (unix.Sockaddr, error) {
	switch addr.Family() {
	case netaddr.IPv4:
		var sa unix.SockaddrInet4
		ip := addr.IP().To4()
		copy(sa.Addr[:], ip)
		sa.Port = int(addr.Port())
		return &sa, nil
	case netaddr.IPv6:
		var sa unix.SockaddrInet6
		ip := addr.IP().To16()
		copy(sa.Addr[:], ip)
		sa.Port = int(addr.Port())
		return &sa, nil
	default:
		return nil, ErrInvalidArgument
	}
}

func fromSockaddr(sa unix.Sockaddr) netaddr.SocketAddress {
	switch v := sa.(type) {
	case *unix.SockaddrInet4:
		return netaddr.SocketAddressFromNetIP(v.Addr[:], uint16(v.Port))
	case *unix.SockaddrInet6:
		return netaddr.SocketAddressFromNetIP(v.Addr[:], uint16(v.Port))
	default:
		return netaddr.SocketAddress{}
	}
}

const (
	shutRD   = unix.SHUT_RD
	shutWR   = unix.SHUT_WR
	shutRDWR = unix.SHUT_RDWR
)
