// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import (
	"encoding/binary"
	"math/bits"
)

// ToNetwork16 converts a host-byte-order 16-bit value to network byte order.
func ToNetwork16(v uint16) uint16 {
	if Native() == binary.BigEndian {
		return v
	}
	return bits.ReverseBytes16(v)
}

// ToHost16 converts a network-byte-order 16-bit value to host byte order.
// It is its own inverse, identical to ToNetwork16.
func ToHost16(v uint16) uint16 { return ToNetwork16(v) }

// ToNetwork32 converts a host-byte-order 32-bit value to network byte order.
func ToNetwork32(v uint32) uint32 {
	if Native() == binary.BigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

// ToHost32 converts a network-byte-order 32-bit value to host byte order.
// It is its own inverse, identical to ToNetwork32.
func ToHost32(v uint32) uint32 { return ToNetwork32(v) }
