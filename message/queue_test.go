// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import (
	"testing"

	"code.hybscloud.com/netio/iobuf"
	"code.hybscloud.com/netio/tsbuf"
)

func TestBufferWriterSendAndRead(t *testing.T) {
	t.Parallel()
	w := NewBufferWriter[int](iobuf.WithLimit(4))
	if !w.Send(1, tsbuf.Immediate) || !w.Send(2, tsbuf.Immediate) {
		t.Fatalf("expected sends to succeed")
	}
	if w.Len() != 2 {
		t.Fatalf("got len %d want 2", w.Len())
	}
	v, ok := w.Read(tsbuf.Immediate)
	if !ok || v != 1 {
		t.Fatalf("got %d ok=%v want 1", v, ok)
	}
}

func TestBufferWriterClosedRejectsSend(t *testing.T) {
	t.Parallel()
	w := NewBufferWriter[int]()
	w.Close(false)
	if w.Send(1, tsbuf.Immediate) {
		t.Fatalf("expected Send on a closed writer to fail")
	}
	if !w.Closed() {
		t.Fatalf("expected Closed to report true")
	}
}

func TestBufferWriterCloseCancelPendingDropsQueue(t *testing.T) {
	t.Parallel()
	w := NewBufferWriter[int]()
	w.Send(1, tsbuf.Immediate)
	w.Send(2, tsbuf.Immediate)
	w.Close(true)
	if w.Len() != 0 {
		t.Fatalf("expected queue cleared on cancelPending close, got len %d", w.Len())
	}
}

func TestBufferWriterCloseIsIdempotent(t *testing.T) {
	t.Parallel()
	w := NewBufferWriter[int]()
	w.Close(false)
	w.Close(false) // must not panic or double-unregister
	if !w.Closed() {
		t.Fatalf("expected Closed to report true")
	}
}
