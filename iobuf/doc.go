// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package iobuf provides Buffer, a move-aware, bounded, single-threaded
// circular buffer over elements of any type.
//
// Buffer is the innermost primitive of the netio stack: tsbuf.Threadsafe
// wraps it with a mutex and condition variables, message.Queue specializes
// the threadsafe wrapper to typed messages, and socket.Socket uses a pair
// of byte buffers as its read/write staging area.
//
// # Growth and alignment
//
// Live elements occupy logical positions [first, first+count) modulo the
// capacity of the backing storage. A write that fits within existing
// capacity is inserted directly, wrapping around the end of storage if
// necessary. A write that requires growth first repacks ("aligns") the live
// elements into the start of storage, then reallocates — insertion during
// growth always appends at the logical end rather than wrapping. This
// matches the later of the two historical buffer implementations this
// package's source specification distinguishes: align-then-grow, not
// grow-with-partial-insert.
//
// # Limits
//
// A Buffer has a configured Limit. Writes that would push Len() past the
// effective limit fail atomically — on failure, no element is written, not
// even a prefix of a multi-element write. The effective limit is always the
// configured Limit, even if the limit was lowered at runtime below the
// current Len(); Free() reports 0 rather than a negative number in that case.
// A Limit of 0 means unbounded, subject only to available memory.
//
// # Shrinking
//
// When a Buffer becomes empty (via Read, a fully-consuming ReadFunc, Clear,
// or ReadAllSwap), storage whose capacity exceeds the configured Limit (or
// 1,000,000 elements when Limit is 0) is released and replaced by a fresh,
// minimally sized reservation. This bounds long-term memory retention after
// a transient burst without penalizing steady-state use.
//
// # Predicate reads
//
// ReadFunc is the fundamental read operation: it hands the caller up to two
// contiguous spans covering the live elements (the buffer wraps, so a read
// that straddles the end of storage is split in two), and the caller
// reports back how many elements it actually consumed. ReadInto and
// ReadSlice are convenience wrappers built on ReadFunc, as is ReadAllSwap
// when the live region does not start at the beginning of storage.
package iobuf
