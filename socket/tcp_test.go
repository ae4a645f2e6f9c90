//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package socket_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.hybscloud.com/netio/netaddr"
	"code.hybscloud.com/netio/socket"
)

var _ = Describe("TCP loopback", func() {
	var srv *socket.StreamSocket

	BeforeEach(func() {
		var err error
		srv, err = socket.ListenTCP(netaddr.ParseSocketAddress("127.0.0.1:0"), 8)
		Expect(err).NotTo(HaveOccurred())
		Expect(srv.State()).To(Equal(socket.Listening))
	})

	AfterEach(func() {
		if srv != nil {
			_ = srv.Close()
		}
	})

	It("echoes a message round-trip", func() {
		local, err := srv.LocalAddr()
		Expect(err).NotTo(HaveOccurred())

		accepted := make(chan *socket.StreamSocket, 1)
		go func() {
			defer GinkgoRecover()
			conn, _, err := srv.Accept()
			Expect(err).NotTo(HaveOccurred())
			accepted <- conn
		}()

		cli, err := socket.TCPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = cli.Close() }()

		err = cli.Connect(context.Background(), local)
		Expect(err).NotTo(HaveOccurred())
		Expect(cli.State()).To(Equal(socket.Connected))

		var conn *socket.StreamSocket
		Eventually(accepted, time.Second).Should(Receive(&conn))
		defer func() { _ = conn.Close() }()

		_, err = cli.Write([]byte("ping"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cli.Flush()).To(Succeed())

		buf := make([]byte, 4)
		n, err := conn.Read(buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(buf[:n])).To(Equal("ping"))
	})

	It("rejects Listen on a socket that is not Bound", func() {
		s, err := socket.TCPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = s.Close() }()

		err = s.Listen(8)
		Expect(err).To(MatchError(socket.ErrInvalidState))
	})

	It("rejects Accept on a socket that is not Listening", func() {
		s, err := socket.TCPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = s.Close() }()

		_, _, err = s.Accept()
		Expect(err).To(MatchError(socket.ErrInvalidState))
	})

	It("rejects Bind on a socket that is already bound", func() {
		s, err := socket.TCPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = s.Close() }()

		Expect(s.Bind(netaddr.ParseSocketAddress("127.0.0.1:0"))).To(Succeed())
		err = s.Bind(netaddr.ParseSocketAddress("127.0.0.1:0"))
		Expect(err).To(MatchError(socket.ErrInvalidState))
	})

	It("transitions to Invalid on Close", func() {
		s, err := socket.TCPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Bind(netaddr.ParseSocketAddress("127.0.0.1:0"))).To(Succeed())

		Expect(s.Close()).To(Succeed())
		Expect(s.State()).To(Equal(socket.Invalid))
	})

	It("leaves the socket Invalid and reusable after a failed Connect", func() {
		s, err := socket.TCPSocket(netaddr.IPv4)
		Expect(err).NotTo(HaveOccurred())
		defer func() { _ = s.Close() }()

		refused, err := socket.ListenTCP(netaddr.ParseSocketAddress("127.0.0.1:0"), 8)
		Expect(err).NotTo(HaveOccurred())
		addr, err := refused.LocalAddr()
		Expect(err).NotTo(HaveOccurred())
		Expect(refused.Close()).To(Succeed())

		err = s.Connect(context.Background(), addr)
		Expect(err).To(HaveOccurred())
		Expect(s.State()).To(Equal(socket.Invalid))

		local, err := srv.LocalAddr()
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Connect(context.Background(), local)).To(Succeed())
		Expect(s.State()).To(Equal(socket.Connected))
	})
})
