// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsbuf

import (
	"sync"

	"code.hybscloud.com/netio/iobuf"
)

// Threadsafe wraps an iobuf.Buffer with a mutex, producer/consumer
// condition variables, and registration accounting. See the package doc
// for the blocking and registration rules.
type Threadsafe[T any] struct {
	mu sync.Mutex

	buf *iobuf.Buffer[T]

	producerWait sync.Cond
	consumerWait sync.Cond

	producerCount int
	consumerCount int

	producerEverRegistered bool
	consumerEverRegistered bool
}

// New returns an empty Threadsafe configured by opts.
func New[T any](opts ...iobuf.Option) *Threadsafe[T] {
	tb := &Threadsafe[T]{buf: iobuf.NewBuffer[T](opts...)}
	tb.producerWait.L = &tb.mu
	tb.consumerWait.L = &tb.mu
	return tb
}

// RegisterProducer records one more active producer.
func (tb *Threadsafe[T]) RegisterProducer() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.producerCount++
	tb.producerEverRegistered = true
}

// UnregisterProducer removes one active producer. If this was the last
// registered producer, blocked consumers are woken so they can observe
// AtEnd and terminate.
func (tb *Threadsafe[T]) UnregisterProducer() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if tb.producerCount > 0 {
		tb.producerCount--
	}
	if tb.producerCount == 0 && tb.producerEverRegistered {
		tb.consumerWait.Broadcast()
	}
}

// RegisterConsumer records one more active consumer.
func (tb *Threadsafe[T]) RegisterConsumer() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.consumerCount++
	tb.consumerEverRegistered = true
}

// UnregisterConsumer removes one active consumer. If this was the last
// registered consumer, blocked producers are woken so they can fail fast.
func (tb *Threadsafe[T]) UnregisterConsumer() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if tb.consumerCount > 0 {
		tb.consumerCount--
	}
	if tb.consumerCount == 0 && tb.consumerEverRegistered {
		tb.producerWait.Broadcast()
	}
}

// ProducerGuard registers a producer and returns a guard that unregisters
// it exactly once when closed.
func (tb *Threadsafe[T]) ProducerGuard() *ProducerGuard[T] {
	tb.RegisterProducer()
	return &ProducerGuard[T]{tb: tb}
}

// ConsumerGuard registers a consumer and returns a guard that unregisters
// it exactly once when closed.
func (tb *Threadsafe[T]) ConsumerGuard() *ConsumerGuard[T] {
	tb.RegisterConsumer()
	return &ConsumerGuard[T]{tb: tb}
}

func (tb *Threadsafe[T]) consumersAvailable() bool {
	return tb.consumerCount > 0 || !tb.consumerEverRegistered
}

func (tb *Threadsafe[T]) producersAvailable() bool {
	return tb.producerCount > 0 || !tb.producerEverRegistered
}

// AtEnd reports whether the buffer is empty and no producer is available,
// i.e. no further element will ever arrive.
func (tb *Threadsafe[T]) AtEnd() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.buf.Empty() && !tb.producersAvailable()
}

// Write appends a single element under mode's blocking discipline. ok
// reports whether the element was written; lost reports whether an
// Overwrite write had to evict an existing element to make room.
func (tb *Threadsafe[T]) Write(v T, mode Mode) (ok, lost bool) {
	return tb.WriteSlice([]T{v}, mode)
}

// WriteSlice appends every element of vs, in order, under mode's blocking
// discipline. See Write for the meaning of ok and lost.
func (tb *Threadsafe[T]) WriteSlice(vs []T, mode Mode) (ok, lost bool) {
	n := len(vs)
	tb.mu.Lock()
	defer tb.mu.Unlock()
	for {
		if tb.buf.Free() >= n {
			wrote := tb.buf.WriteSlice(vs)
			if wrote {
				tb.consumerWait.Signal()
			}
			return wrote, false
		}
		switch mode {
		case Immediate:
			return false, false
		case Overwrite:
			for tb.buf.Free() < n && tb.buf.Len() > 0 {
				tb.buf.Read()
				lost = true
			}
			wrote := tb.buf.WriteSlice(vs)
			if wrote {
				tb.consumerWait.Signal()
			}
			return wrote, lost
		default: // Blocking
			if !tb.consumersAvailable() {
				return false, false
			}
			tb.producerWait.Wait()
		}
	}
}

// ReadFunc offers fn the live elements exactly as iobuf.Buffer.ReadFunc
// does, blocking according to mode when the buffer is currently empty.
// It returns the number of elements consumed.
func (tb *Threadsafe[T]) ReadFunc(max int, mode Mode, fn func(a, c []T) int) int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	for {
		if !tb.buf.Empty() {
			n := tb.buf.ReadFunc(max, fn)
			if n > 0 {
				tb.producerWait.Signal()
			}
			return n
		}
		if mode == Immediate {
			return 0
		}
		if !tb.producersAvailable() {
			return 0
		}
		tb.consumerWait.Wait()
	}
}

// Read removes and returns the oldest element. ok is false if mode is
// Immediate and the buffer is empty, or if mode is Blocking and every
// producer has unregistered before an element arrives.
func (tb *Threadsafe[T]) Read(mode Mode) (v T, ok bool) {
	n := tb.ReadFunc(1, mode, func(a, c []T) int {
		if len(a) > 0 {
			v = a[0]
		} else if len(c) > 0 {
			v = c[0]
		}
		return 1
	})
	return v, n == 1
}

// PeekFunc behaves like ReadFunc but does not remove the inspected
// elements. It exists to support delay-consume readers (see
// DelayConsumeReader); ordinary callers should use ReadFunc or Read.
func (tb *Threadsafe[T]) PeekFunc(max int, mode Mode, fn func(a, c []T) int) int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	for {
		if !tb.buf.Empty() {
			return tb.buf.PeekFunc(max, fn)
		}
		if mode == Immediate {
			return 0
		}
		if !tb.producersAvailable() {
			return 0
		}
		tb.consumerWait.Wait()
	}
}

// Drop removes up to n of the oldest elements without returning them, used
// by delay-consume readers to discard a stale head before reading the next
// element. It never blocks.
func (tb *Threadsafe[T]) Drop(n int) int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.buf.Drop(n)
}

// Len returns the number of live elements.
func (tb *Threadsafe[T]) Len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.buf.Len()
}

// Cap returns the capacity of the backing storage.
func (tb *Threadsafe[T]) Cap() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.buf.Cap()
}

// Limit returns the configured limit. Zero means unbounded.
func (tb *Threadsafe[T]) Limit() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.buf.Limit()
}

// Clear discards every pending element and wakes any blocked producers,
// since doing so can only have created free space.
func (tb *Threadsafe[T]) Clear() {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.buf.Clear()
	tb.producerWait.Broadcast()
}
