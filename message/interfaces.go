// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import "code.hybscloud.com/netio/tsbuf"

// Writer accepts messages of type M and can be retired.
type Writer[M any] interface {
	// Send delivers or enqueues m under mode's blocking discipline. It
	// reports false if the writer is closed or mode is Immediate/Overwrite
	// and the writer cannot accept m right now.
	Send(m M, mode tsbuf.Mode) bool

	// Close retires the writer. If cancelPending is true, any messages
	// already queued but not yet delivered are discarded; otherwise queued
	// writers drain naturally to whatever consumes them. Close is
	// idempotent.
	Close(cancelPending bool)

	// Closed reports whether Close has been called.
	Closed() bool
}

// Queue is a Writer that also exposes its backlog depth, for writers
// backed by a bounded buffer.
type Queue[M any] interface {
	Writer[M]

	// Len returns the number of messages currently queued.
	Len() int
}

// ReaderWriter is a Writer that can also be read from directly, for
// writers that hold their messages rather than handing them to a callback
// or stream as they arrive.
type ReaderWriter[M any] interface {
	Writer[M]

	// Read removes and returns the oldest queued message.
	Read(mode tsbuf.Mode) (M, bool)
}
