// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tsbuf provides Threadsafe, a mutex/condition-variable wrapper
// around an iobuf.Buffer with producer/consumer registration accounting,
// and Pipe, a pair of Threadsafe endpoints wired into a full-duplex
// channel.
//
// # Registration
//
// Every participant must bracket its use of a Threadsafe with
// RegisterProducer/UnregisterProducer or RegisterConsumer/UnregisterConsumer
// (or, more conveniently, hold a ProducerGuard/ConsumerGuard, which runs the
// matching unregister exactly once on Close). A side is "available" if it
// has at least one active registrant, or if no participant on that side has
// ever registered — the permissive default lets single-producer or
// single-consumer code skip registration entirely and still block
// correctly. When the last registrant on a side unregisters after that side
// has been registered at least once, the opposite condition variable is
// broadcast: disappearance of the last consumer wakes blocked producers so
// they can fail fast, and disappearance of the last producer wakes blocked
// consumers so they can drain and terminate.
//
// # Blocking modes
//
// Writes take a Mode: Blocking waits for free space or for all consumers to
// disappear (then fails); Immediate never blocks; Overwrite evicts the
// oldest element(s) to make room and always succeeds, reporting whether it
// had to evict anything. Reads take Blocking or Immediate; a blocking read
// additionally aborts once the buffer is empty and every producer has
// unregistered.
package tsbuf
