// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import (
	"sync"
	"sync/atomic"

	"code.hybscloud.com/netio/tsbuf"
)

// Broadcaster fans a message out to a dynamic set of Writer references.
// M must be safely copyable: Send hands the same value to every held
// writer, and SendToOne never mutates m between attempts.
type Broadcaster[M any] struct {
	mu      sync.Mutex
	writers map[int64]Writer[M]
	nextID  atomic.Int64
	closed  atomic.Bool
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster[M any]() *Broadcaster[M] {
	return &Broadcaster[M]{writers: make(map[int64]Writer[M])}
}

// Handle identifies a writer previously added to a Broadcaster, for later
// removal.
type Handle int64

// Add registers w and returns a Handle that can later be passed to
// Remove. Add on a closed Broadcaster closes w immediately and returns
// the zero Handle.
func (b *Broadcaster[M]) Add(w Writer[M]) Handle {
	if b.closed.Load() {
		w.Close(false)
		return 0
	}
	id := b.nextID.Add(1)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writers[id] = w
	return Handle(id)
}

// Remove unregisters the writer identified by h. It does not close the
// writer; callers that want that should Close it themselves.
func (b *Broadcaster[M]) Remove(h Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.writers, int64(h))
}

// Send delivers m to every currently registered writer under mode's
// blocking discipline, pruning any writer that reports itself closed. It
// returns the number of writers that accepted m.
func (b *Broadcaster[M]) Send(m M, mode tsbuf.Mode) int {
	b.mu.Lock()
	targets := make([]Writer[M], 0, len(b.writers))
	ids := make([]int64, 0, len(b.writers))
	for id, w := range b.writers {
		targets = append(targets, w)
		ids = append(ids, id)
	}
	b.mu.Unlock()

	accepted := 0
	var stale []int64
	for i, w := range targets {
		if w.Closed() {
			stale = append(stale, ids[i])
			continue
		}
		if w.Send(m, mode) {
			accepted++
		}
	}
	if len(stale) > 0 {
		b.mu.Lock()
		for _, id := range stale {
			delete(b.writers, id)
		}
		b.mu.Unlock()
	}
	return accepted
}

// SendToOne delivers m to the first registered writer that accepts it
// under mode's blocking discipline, in an unspecified but stable-per-call
// order. It reports whether any writer accepted m.
func (b *Broadcaster[M]) SendToOne(m M, mode tsbuf.Mode) bool {
	b.mu.Lock()
	targets := make([]Writer[M], 0, len(b.writers))
	for _, w := range b.writers {
		targets = append(targets, w)
	}
	b.mu.Unlock()

	for _, w := range targets {
		if w.Closed() {
			continue
		}
		if w.Send(m, mode) {
			return true
		}
	}
	return false
}

// Len returns the number of currently registered writers.
func (b *Broadcaster[M]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.writers)
}

// Close closes every registered writer, cascading cancelPending to each,
// and marks the Broadcaster closed: subsequent Add calls close their
// argument immediately instead of registering it.
func (b *Broadcaster[M]) Close(cancelPending bool) {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}
	b.mu.Lock()
	targets := make([]Writer[M], 0, len(b.writers))
	for _, w := range b.writers {
		targets = append(targets, w)
	}
	b.writers = make(map[int64]Writer[M])
	b.mu.Unlock()

	for _, w := range targets {
		w.Close(cancelPending)
	}
}
