// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsbuf

import "sync"

// ProducerGuard brackets one producer's registration with a Threadsafe.
// Close unregisters the producer exactly once, even if called more than
// once or concurrently.
type ProducerGuard[T any] struct {
	tb   *Threadsafe[T]
	once sync.Once
}

// Close unregisters the guarded producer.
func (g *ProducerGuard[T]) Close() {
	g.once.Do(g.tb.UnregisterProducer)
}

// ConsumerGuard brackets one consumer's registration with a Threadsafe.
// Close unregisters the consumer exactly once, even if called more than
// once or concurrently.
type ConsumerGuard[T any] struct {
	tb   *Threadsafe[T]
	once sync.Once
}

// Close unregisters the guarded consumer.
func (g *ConsumerGuard[T]) Close() {
	g.once.Do(g.tb.UnregisterConsumer)
}
