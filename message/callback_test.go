// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package message

import (
	"sync"
	"testing"

	"code.hybscloud.com/netio/tsbuf"
)

func TestSyncCallbackWriterInvokesInOrder(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var got []int
	w := NewSyncCallbackWriter(func(v int) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, v)
	})
	for i := 1; i <= 5; i++ {
		if !w.Send(i, tsbuf.Blocking) {
			t.Fatalf("send %d failed", i)
		}
	}
	if len(got) != 5 {
		t.Fatalf("got %v", got)
	}
	for i := range got {
		if got[i] != i+1 {
			t.Fatalf("got %v", got)
		}
	}
}

func TestSyncCallbackWriterClosedRejectsSend(t *testing.T) {
	t.Parallel()
	w := NewSyncCallbackWriter(func(int) {})
	w.Close(false)
	if w.Send(1, tsbuf.Blocking) {
		t.Fatalf("expected Send on a closed writer to fail")
	}
}

func TestAsyncCallbackWriterDrainsAndTerminates(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var got []int
	w := NewAsyncCallbackWriter(func(v int) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, v)
	})
	for i := 1; i <= 10; i++ {
		if !w.Send(i, tsbuf.Blocking) {
			t.Fatalf("send %d failed", i)
		}
	}
	w.Close(false)
	w.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 10 {
		t.Fatalf("expected all 10 messages processed, got %v", got)
	}
	for i := range got {
		if got[i] != i+1 {
			t.Fatalf("got out-of-order results: %v", got)
		}
	}
}

func TestAsyncCallbackWriterCancelPendingSkipsQueuedWork(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	var got []int
	block := make(chan struct{})
	started := make(chan struct{}, 1)
	w := NewAsyncCallbackWriter(func(v int) {
		select {
		case started <- struct{}{}:
			<-block // hold the worker on the first message
		default:
		}
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	w.Send(1, tsbuf.Blocking)
	<-started
	w.Send(2, tsbuf.Blocking)
	w.Send(3, tsbuf.Blocking)
	w.Close(true) // cancel everything still queued behind the in-flight message
	close(block)
	w.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected only the in-flight message processed, got %v", got)
	}
}
