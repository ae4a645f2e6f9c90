// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package netaddr provides address value types shared by the socket
// package: SocketAddress, a small family-tagged fixed-size value able to
// hold either an IPv4 or IPv6 endpoint plus a port, and NetworkAddress, a
// hostname that may or may not yet have been resolved to one or more
// SocketAddress values.
//
// SocketAddress intentionally stores both address families in the same
// 16-byte field so it can be copied and compared by value like the
// sockaddr_storage idiom it mirrors, rather than carrying a net.IP or an
// interface value.
package netaddr
