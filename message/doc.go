// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package message provides a small writer protocol over typed messages,
// built on tsbuf.Threadsafe, plus a fan-out Broadcaster.
//
// # Writer hierarchy
//
// Writer is the common interface: Send enqueues or delivers one message
// under a tsbuf.Mode, Close retires the writer, and Closed reports whether
// it has been retired. BufferWriter is a bounded FIFO writer backed
// directly by a tsbuf.Threadsafe. SyncCallbackWriter invokes a function
// synchronously, under its own lock, on every Send. AsyncCallbackWriter
// owns a buffer and a dedicated goroutine that drains it in delay-consume
// mode and invokes a function until the buffer is closed; Send merely
// enqueues. StreamWriter and its async counterpart write messages to an
// io.Writer (optionally flushing); FileWriter wraps a stream writer around
// a file it owns and closes.
//
// # Closed writers reject sends
//
// A writer that has been Closed rejects further Send calls rather than
// silently reopening. This is a deliberate, documented resolution of an
// open question in this package's source specification (some prior
// implementations flip a writer back open on a successful post-close
// send); see this repository's DESIGN.md for the reasoning.
//
// # Broadcaster
//
// Broadcaster holds a set of Writer references and fans a single Send out
// to all of them, or delivers to exactly one via SendToOne (the first
// writer to accept wins). Close cascades to every held writer.
// SendToOne requires the message type to be safely copyable: the
// broadcaster never partially hands a message to one writer and then
// forwards the same value, mutated, to the next.
package message
