// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsbuf

// DelayConsumeReader adapts a Threadsafe for single-reader work loops that
// want delay-consume ("peek") semantics: the element returned by
// ReadDelayConsume stays at the head of the queue until the reader's next
// Read or ReadDelayConsume call. If the reader crashes mid-processing and
// is restarted against the same Threadsafe, the same element is delivered
// again.
//
// The staleness flag belongs to the reader, not the underlying Threadsafe:
// two independent DelayConsumeReaders over the same Threadsafe do not
// share or interfere with each other's peek state (though, as with any
// multi-consumer use, they do compete for the same elements).
type DelayConsumeReader[T any] struct {
	tb    *Threadsafe[T]
	stale bool
}

// NewDelayConsumeReader returns a DelayConsumeReader over tb.
func NewDelayConsumeReader[T any](tb *Threadsafe[T]) *DelayConsumeReader[T] {
	return &DelayConsumeReader[T]{tb: tb}
}

// dropStale discards a previously peeked head, if any.
func (r *DelayConsumeReader[T]) dropStale() {
	if r.stale {
		r.tb.Drop(1)
		r.stale = false
	}
}

// Read drops any stale peeked head and removes and returns the next
// element, following mode's blocking discipline.
func (r *DelayConsumeReader[T]) Read(mode Mode) (T, bool) {
	r.dropStale()
	return r.tb.Read(mode)
}

// ReadDelayConsume drops any previously stale peeked head, then returns the
// new head without removing it. The returned element remains available to
// be re-read (by this reader or another) until this reader's next Read or
// ReadDelayConsume call.
func (r *DelayConsumeReader[T]) ReadDelayConsume(mode Mode) (v T, ok bool) {
	r.dropStale()
	n := r.tb.PeekFunc(1, mode, func(a, c []T) int {
		if len(a) > 0 {
			v = a[0]
		} else if len(c) > 0 {
			v = c[0]
		}
		return 1
	})
	ok = n == 1
	r.stale = ok
	return v, ok
}
