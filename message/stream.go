// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import (
	"bufio"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"code.hybscloud.com/netio/iobuf"
	"code.hybscloud.com/netio/tsbuf"
)

// Encoder renders one message as bytes to append to a stream. It is
// called with the destination writer already held under the stream
// writer's lock, so implementations need not be concurrency-safe
// themselves.
type Encoder[M any] func(w io.Writer, m M) error

// StreamWriter writes messages to an underlying io.Writer synchronously,
// under its own lock, flushing after every message if the writer
// implements an optional Flush() error method (as *bufio.Writer does).
type StreamWriter[M any] struct {
	w       io.Writer
	encode  Encoder[M]
	mu      sync.Mutex
	closed  atomic.Bool
	closer  io.Closer
}

type flusher interface {
	Flush() error
}

// NewStreamWriter returns a StreamWriter that encodes each message with
// encode and writes it to w.
func NewStreamWriter[M any](w io.Writer, encode Encoder[M]) *StreamWriter[M] {
	return &StreamWriter[M]{w: w, encode: encode}
}

// Send encodes and writes m. mode is accepted for interface conformance
// but has no effect: writing to the underlying io.Writer never blocks on
// a consumer the way a buffered queue does.
func (w *StreamWriter[M]) Send(m M, _ tsbuf.Mode) bool {
	if w.closed.Load() {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed.Load() {
		return false
	}
	if err := w.encode(w.w, m); err != nil {
		return false
	}
	if f, ok := w.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return false
		}
	}
	return true
}

// Close retires the writer, flushing the underlying writer if it has a
// Flush() error method. Only a FileWriter's owned file is closed; any
// other underlying writer is left open even if it implements io.Closer.
// cancelPending has no effect: a stream writer never has anything queued.
func (w *StreamWriter[M]) Close(bool) {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if f, ok := w.w.(flusher); ok {
		_ = f.Flush()
	}
	if w.closer != nil {
		_ = w.closer.Close()
	}
}

// Closed reports whether Close has been called.
func (w *StreamWriter[M]) Closed() bool { return w.closed.Load() }

// AsyncStreamWriter buffers messages through a Threadsafe and writes them
// to an underlying io.Writer from a dedicated goroutine, so Send never
// blocks on I/O.
type AsyncStreamWriter[M any] struct {
	tb     *tsbuf.Threadsafe[M]
	pg     *tsbuf.ProducerGuard[M]
	cg     *tsbuf.ConsumerGuard[M]
	closed atomic.Bool
	mu     sync.Mutex
	done   chan struct{}
	closer io.Closer
}

// NewAsyncStreamWriter starts a worker goroutine that encodes and writes
// every message sent to the returned writer, in order, to w.
func NewAsyncStreamWriter[M any](w io.Writer, encode Encoder[M], opts ...iobuf.Option) *AsyncStreamWriter[M] {
	tb := tsbuf.New[M](opts...)
	sw := &AsyncStreamWriter[M]{
		tb:   tb,
		pg:   tb.ProducerGuard(),
		cg:   tb.ConsumerGuard(),
		done: make(chan struct{}),
	}
	go sw.run(w, encode)
	return sw
}

func (w *AsyncStreamWriter[M]) run(dst io.Writer, encode Encoder[M]) {
	defer close(w.done)
	defer w.cg.Close()
	for {
		m, ok := w.tb.Read(tsbuf.Blocking)
		if !ok {
			return
		}
		if err := encode(dst, m); err != nil {
			continue
		}
		if f, ok := dst.(flusher); ok {
			_ = f.Flush()
		}
	}
}

// Send enqueues m under mode's blocking discipline for the worker
// goroutine to write. It reports false without blocking if the writer has
// been closed.
func (w *AsyncStreamWriter[M]) Send(m M, mode tsbuf.Mode) bool {
	if w.closed.Load() {
		return false
	}
	ok, _ := w.tb.Write(m, mode)
	return ok
}

// Close retires the writer, unregistering it as a producer so the worker
// goroutine terminates once the buffer drains, then closes the underlying
// writer if it owns one (see FileWriter). If cancelPending is true the
// buffer is cleared first so nothing further is written.
func (w *AsyncStreamWriter[M]) Close(cancelPending bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	if cancelPending {
		w.tb.Clear()
	}
	w.pg.Close()
	<-w.done
	if w.closer != nil {
		_ = w.closer.Close()
	}
}

// Closed reports whether Close has been called.
func (w *AsyncStreamWriter[M]) Closed() bool { return w.closed.Load() }

// FileWriter wraps a buffered StreamWriter around a file it opens and
// owns: Close flushes the buffer and closes the file.
type FileWriter[M any] struct {
	*StreamWriter[M]
	f *os.File
}

// NewFileWriter opens (creating and truncating) path and returns a
// FileWriter that encodes each sent message with encode.
func NewFileWriter[M any](path string, encode Encoder[M]) (*FileWriter[M], error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(f)
	sw := NewStreamWriter[M](bw, encode)
	sw.closer = f
	return &FileWriter[M]{StreamWriter: sw, f: f}, nil
}
