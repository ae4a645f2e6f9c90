// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsbuf

import "code.hybscloud.com/netio/iobuf"

// Pipe is a full-duplex channel made of two Threadsafe buffers: endpoint A
// writes to the first and reads from the second; endpoint B is symmetric.
// The two Ends share ownership of both buffers, so either End outliving the
// other keeps the channel usable until both are closed.
type Pipe[T any] struct {
	a, b *End[T]
}

// End is one side of a Pipe.
type End[T any] struct {
	out *Threadsafe[T]
	in  *Threadsafe[T]
}

// NewPipe returns a new full-duplex Pipe; A and B return its two ends.
func NewPipe[T any](opts ...iobuf.Option) *Pipe[T] {
	buf0 := New[T](opts...)
	buf1 := New[T](opts...)
	p := &Pipe[T]{
		a: &End[T]{out: buf0, in: buf1},
		b: &End[T]{out: buf1, in: buf0},
	}
	return p
}

// A returns the first endpoint.
func (p *Pipe[T]) A() *End[T] { return p.a }

// B returns the second endpoint.
func (p *Pipe[T]) B() *End[T] { return p.b }

// Write appends v to this end's outbound buffer.
func (e *End[T]) Write(v T, mode Mode) (ok, lost bool) { return e.out.Write(v, mode) }

// Read removes and returns the oldest element from this end's inbound buffer.
func (e *End[T]) Read(mode Mode) (T, bool) { return e.in.Read(mode) }

// RegisterProducer registers this end as a producer on its outbound buffer.
func (e *End[T]) RegisterProducer() { e.out.RegisterProducer() }

// RegisterConsumer registers this end as a consumer on its inbound buffer.
func (e *End[T]) RegisterConsumer() { e.in.RegisterConsumer() }

// Close unregisters this end as both a producer (of out) and a consumer
// (of in). It is safe to call from either end; each side's own
// registration is independent.
func (e *End[T]) Close() {
	e.out.UnregisterProducer()
	e.in.UnregisterConsumer()
}
