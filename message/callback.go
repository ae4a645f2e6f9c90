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

// SyncCallbackWriter invokes fn synchronously, under its own lock, for
// every accepted Send. It never buffers: a blocking Send waits only for
// the lock, never for a consumer.
type SyncCallbackWriter[M any] struct {
	fn     func(M)
	mu     sync.Mutex
	closed atomic.Bool
}

// NewSyncCallbackWriter returns a SyncCallbackWriter that invokes fn for
// every accepted message.
func NewSyncCallbackWriter[M any](fn func(M)) *SyncCallbackWriter[M] {
	return &SyncCallbackWriter[M]{fn: fn}
}

// Send invokes fn(m) and reports true, unless the writer has been closed.
// mode is accepted for interface conformance but has no effect: a
// synchronous callback never blocks on anything but its own lock.
func (w *SyncCallbackWriter[M]) Send(m M, _ tsbuf.Mode) bool {
	if w.closed.Load() {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Load() {
		return false
	}
	w.fn(m)
	return true
}

// Close retires the writer. cancelPending has no effect: a synchronous
// callback writer never has anything queued.
func (w *SyncCallbackWriter[M]) Close(bool) { w.closed.Store(true) }

// Closed reports whether Close has been called.
func (w *SyncCallbackWriter[M]) Closed() bool { return w.closed.Load() }

// AsyncCallbackWriter owns a bounded buffer and a dedicated goroutine that
// drains it with delay-consume semantics, invoking fn for each message
// until the writer is closed and the buffer is empty. If fn panics while
// processing a message, that message is left at the head of the buffer
// (via the delay-consume reader) so a supervisor that restarts the worker
// loop will redeliver it.
type AsyncCallbackWriter[M any] struct {
	tb     *tsbuf.Threadsafe[M]
	pg     *tsbuf.ProducerGuard[M]
	cg     *tsbuf.ConsumerGuard[M]
	closed atomic.Bool
	mu     sync.Mutex
	done   chan struct{}
}

// NewAsyncCallbackWriter starts a worker goroutine that invokes fn for
// every message sent to the returned writer, in order, until the writer
// is closed and drained.
func NewAsyncCallbackWriter[M any](fn func(M), opts ...iobuf.Option) *AsyncCallbackWriter[M] {
	tb := tsbuf.New[M](opts...)
	w := &AsyncCallbackWriter[M]{
		tb:   tb,
		pg:   tb.ProducerGuard(),
		cg:   tb.ConsumerGuard(),
		done: make(chan struct{}),
	}
	go w.run(fn)
	return w
}

func (w *AsyncCallbackWriter[M]) run(fn func(M)) {
	defer close(w.done)
	defer w.cg.Close()
	r := tsbuf.NewDelayConsumeReader(w.tb)
	for {
		m, ok := r.ReadDelayConsume(tsbuf.Blocking)
		if !ok {
			return
		}
		fn(m) // the next ReadDelayConsume drops m
	}
}

// Send enqueues m under mode's blocking discipline for the worker
// goroutine to process. It reports false without blocking if the writer
// has been closed.
func (w *AsyncCallbackWriter[M]) Send(m M, mode tsbuf.Mode) bool {
	if w.closed.Load() {
		return false
	}
	ok, _ := w.tb.Write(m, mode)
	return ok
}

// Close retires the writer, unregistering it as a producer so the worker
// goroutine terminates once the buffer drains. If cancelPending is true
// the buffer is cleared first so the worker sees no further messages.
func (w *AsyncCallbackWriter[M]) Close(cancelPending bool) {
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
func (w *AsyncCallbackWriter[M]) Closed() bool { return w.closed.Load() }

// Wait blocks until the worker goroutine has terminated, which happens
// once the writer is closed and its buffer has drained.
func (w *AsyncCallbackWriter[M]) Wait() { <-w.done }
