// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import (
	"sync"
	"sync/atomic"

	"code.hybscloud.com/netio/iobuf"
	"code.hybscloud.com/netio/tsbuf"
)

// BufferWriter is a ReaderWriter and Queue backed directly by a
// tsbuf.Threadsafe. It registers itself as a producer for the lifetime of
// the writer, so a blocked Read observes the end of the queue once the
// writer is closed and drained. It registers no consumer.
type BufferWriter[M any] struct {
	tb     *tsbuf.Threadsafe[M]
	pg     *tsbuf.ProducerGuard[M]
	closed atomic.Bool
	mu     sync.Mutex
}

// NewBufferWriter returns a BufferWriter configured by opts.
func NewBufferWriter[M any](opts ...iobuf.Option) *BufferWriter[M] {
	tb := tsbuf.New[M](opts...)
	return &BufferWriter[M]{tb: tb, pg: tb.ProducerGuard()}
}

// Send enqueues m under mode's blocking discipline. It reports false
// without blocking if the writer has been closed.
func (w *BufferWriter[M]) Send(m M, mode tsbuf.Mode) bool {
	if w.closed.Load() {
		return false
	}
	ok, _ := w.tb.Write(m, mode)
	return ok
}

// Read removes and returns the oldest queued message.
func (w *BufferWriter[M]) Read(mode tsbuf.Mode) (M, bool) {
	return w.tb.Read(mode)
}

// Len returns the number of messages currently queued.
func (w *BufferWriter[M]) Len() int { return w.tb.Len() }

// Close retires the writer. Closing unregisters it as a producer so any
// blocked or future reader observes AtEnd once the queue drains; if
// cancelPending is true the queue is cleared immediately instead.
func (w *BufferWriter[M]) Close(cancelPending bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	if cancelPending {
		w.tb.Clear()
	}
	w.pg.Close()
}

// Closed reports whether Close has been called.
func (w *BufferWriter[M]) Closed() bool { return w.closed.Load() }
