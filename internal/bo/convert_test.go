// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import "testing"

func TestToNetwork16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x1234, 0xffff} {
		if got := ToHost16(ToNetwork16(v)); got != v {
			t.Fatalf("round trip: got %#x want %#x", got, v)
		}
	}
}

func TestToNetwork32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x01020304, 0xffffffff} {
		if got := ToHost32(ToNetwork32(v)); got != v {
			t.Fatalf("round trip: got %#x want %#x", got, v)
		}
	}
}

func TestToNetwork16BigEndianWire(t *testing.T) {
	// Port 443 (0x01bb) in network (big-endian) byte order puts 0x01 in the
	// first byte of memory.
	got := ToNetwork16(443)
	var wire [2]byte
	Native().PutUint16(wire[:], got)
	if wire[0] != 0x01 || wire[1] != 0xbb {
		t.Fatalf("expected big-endian wire form, got %#x", got)
	}
}
