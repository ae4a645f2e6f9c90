// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package socket provides a uniform, error-code-driven abstraction over
// TCP and UDP sockets across POSIX and Windows, built around a single
// Socket state machine and iobuf-backed read/write buffering.
//
// Socket tracks its own State (Invalid, LookingUpHost, Connecting,
// Connected, Bound, Listening, Disconnecting) and the blocking flag the
// caller last requested; every lifecycle operation (Bind, Connect,
// Listen, Shutdown, Disconnect, SetBlocking) re-derives the underlying
// platform descriptor as needed rather than assuming it survives every
// transition, carrying the remembered blocking flag forward.
//
// StreamSocket and DatagramSocket both embed *Socket and narrow its
// capability surface to what their transport supports: a DatagramSocket
// has no Accept, a connected StreamSocket has no SendTo. TCPSocket and
// UDPSocket are thin constructors that fix family, type, and protocol.
package socket
