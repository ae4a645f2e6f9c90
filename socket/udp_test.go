//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.hybscloud.com/netio/netaddr"
	"code.hybscloud.com/netio/socket"
)

var _ = Describe("UDP loopback", func() {
	It("sends and receives a datagram via SendTo/ReceiveFrom", func() {
		srv, err := socket.BindUDP(netaddr.ParseSocketAddress("127.0.0.1:0"))
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = srv.Close() }()

		cli, err := socket.UDPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = cli.Close() }()

		srvAddr, err := srv.LocalAddr()
		Expect(err).NotTo(HaveOccurred())

		_, err = cli.SendTo([]byte("hello"), srvAddr)
		Expect(err).NotTo(HaveOccurred())

		buf := make([]byte, 32)
		n, from, err := srv.ReceiveFrom(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf[:n])).To(Equal("hello"))
		Expect(from.IsLoopback()).To(BeTrue())
	})

	It("reports ErrTruncated when the caller's buffer is smaller than the datagram", func() {
		srv, err := socket.BindUDP(netaddr.ParseSocketAddress("127.0.0.1:0"))
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = srv.Close() }()

		cli, err := socket.UDPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = cli.Close() }()

		srvAddr, err := srv.LocalAddr()
		Expect(err).NotTo(HaveOccurred())

		_, err = cli.SendTo([]byte("a longer payload than the reader's buffer"), srvAddr)
		Expect(err).NotTo(HaveOccurred())

		buf := make([]byte, 4)
		n, _, err := srv.ReceiveFrom(buf)
		Expect(err).To(MatchError(socket.ErrTruncated))
		Expect(n).To(Equal(4))
	})

	It("disconnects to invalid and lazily creates a fresh descriptor on the next bind", func() {
		s, err := socket.UDPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = s.Close() }()

		Expect(s.Bind(netaddr.ParseSocketAddress("127.0.0.1:0"))).To(Succeed())
		Expect(s.State()).To(Equal(socket.Bound))

		Expect(s.Disconnect()).To(Succeed())
		Expect(s.State()).To(Equal(socket.Invalid))

		Expect(s.Bind(netaddr.ParseSocketAddress("127.0.0.1:0"))).To(Succeed())
		Expect(s.State()).To(Equal(socket.Bound))
	})
})
