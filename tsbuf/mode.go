// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsbuf

// Mode selects the blocking discipline for a Threadsafe operation.
type Mode uint8

const (
	// Blocking waits until the operation can make progress or until the
	// opposite side has permanently disappeared.
	Blocking Mode = iota
	// Immediate never waits: it fails (for writes) or returns no element
	// (for reads) rather than block.
	Immediate
	// Overwrite applies to writes only: it evicts the oldest element(s) to
	// make room and always succeeds.
	Overwrite
)

func (m Mode) String() string {
	switch m {
	case Blocking:
		return "Blocking"
	case Immediate:
		return "Immediate"
	case Overwrite:
		return "Overwrite"
	default:
		return "Mode(?)"
	}
}
