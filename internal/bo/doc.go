// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo provides native byte order selection and host/network byte
// order conversion helpers.
//
// Implementation is architecture-specific via build tags where commonly known,
// and falls back to a portable runtime detection elsewhere.
//
// netaddr uses ToNetwork32 and Native to lay out the host-order 32-bit
// address that SocketAddressFromIPv4 accepts in network byte order.
package bo
