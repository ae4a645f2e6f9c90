// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsbuf

import (
	"sort"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/netio/iobuf"
)

func TestBoundedOverwriteLosesOldest(t *testing.T) {
	t.Parallel()
	tb := New[int](iobuf.WithLimit(3))
	tb.WriteSlice([]int{1, 2, 3}, Blocking)
	ok, lost := tb.Write(4, Overwrite)
	if !ok || !lost {
		t.Fatalf("expected ok=true lost=true, got ok=%v lost=%v", ok, lost)
	}
	var got []int
	for i := 0; i < 3; i++ {
		v, ok := tb.Read(Immediate)
		if !ok {
			t.Fatalf("expected element %d", i)
		}
		got = append(got, v)
	}
	want := []int{2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestThreeProducersFanIn(t *testing.T) {
	t.Parallel()
	tb := New[int](iobuf.WithLimit(10))

	const perProducer = 1000
	var wg sync.WaitGroup
	for p := 0; p < 3; p++ {
		wg.Add(1)
		g := tb.ProducerGuard() // register before the consumer can observe AtEnd
		go func() {
			defer wg.Done()
			defer g.Close()
			for i := 1; i <= perProducer; i++ {
				for {
					if ok, _ := tb.Write(i, Blocking); ok {
						break
					}
				}
			}
		}()
	}

	var all []int
	done := make(chan struct{})
	go func() {
		defer close(done)
		g := tb.ConsumerGuard()
		defer g.Close()
		for {
			v, ok := tb.Read(Blocking)
			if !ok {
				return
			}
			all = append(all, v)
		}
	}()

	wg.Wait()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not finish after producers unregistered")
	}

	if len(all) != 3*perProducer {
		t.Fatalf("expected %d elements, got %d", 3*perProducer, len(all))
	}
	sorted := append([]int(nil), all...)
	sort.Ints(sorted)
	for i := range sorted {
		want := (i / 3) + 1
		if sorted[i] != want {
			t.Fatalf("element %d: got %d want %d", i, sorted[i], want)
		}
	}
}

func TestConsumerDisconnectUnblocksProducer(t *testing.T) {
	t.Parallel()
	tb := New[int](iobuf.WithLimit(1))
	cg := tb.ConsumerGuard()
	tb.Write(1, Blocking) // fill the single slot

	result := make(chan bool, 1)
	go func() {
		ok, _ := tb.Write(2, Blocking)
		result <- ok
	}()

	time.Sleep(20 * time.Millisecond) // let the writer block
	cg.Close()

	select {
	case ok := <-result:
		if ok {
			t.Fatalf("expected blocked write to fail once the last consumer unregistered")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("blocked write did not return after consumer unregistered")
	}
}

func TestAtEndAfterLastProducerUnregisters(t *testing.T) {
	t.Parallel()
	tb := New[int]()
	pg := tb.ProducerGuard()
	tb.Write(1, Immediate)
	tb.Read(Immediate)
	if tb.AtEnd() {
		t.Fatalf("expected not at end while producer still registered")
	}
	pg.Close()
	if !tb.AtEnd() {
		t.Fatalf("expected at end once empty and no producers remain")
	}
	if _, ok := tb.Read(Blocking); ok {
		t.Fatalf("expected blocking read on an at-end buffer to return immediately with no element")
	}
}

func TestDelayConsumeRedeliversOnCrash(t *testing.T) {
	t.Parallel()
	tb := New[string]()
	tb.Write("task-1", Immediate)

	r := NewDelayConsumeReader(tb)
	v, ok := r.ReadDelayConsume(Immediate)
	if !ok || v != "task-1" {
		t.Fatalf("got %q ok=%v", v, ok)
	}

	// Simulate a crash: a fresh reader over the same buffer still sees the
	// stale head because it was never dropped.
	fresh := NewDelayConsumeReader(tb)
	v2, ok := fresh.ReadDelayConsume(Immediate)
	if !ok || v2 != "task-1" {
		t.Fatalf("expected redelivery after simulated crash, got %q ok=%v", v2, ok)
	}

	// A normal Read on the original reader drops the stale head and moves on.
	tb.Write("task-2", Immediate)
	got, ok := r.Read(Immediate)
	if !ok || got != "task-2" {
		t.Fatalf("expected Read to drop the stale head and return task-2, got %q ok=%v", got, ok)
	}
	got2, ok := r.Read(Immediate)
	if ok {
		t.Fatalf("expected no element after task-2, got %q", got2)
	}
}

func TestPipeRoundTrip(t *testing.T) {
	t.Parallel()
	p := NewPipe[string]()
	a, b := p.A(), p.B()
	a.RegisterProducer()
	b.RegisterConsumer()

	if ok, _ := a.Write("ping", Blocking); !ok {
		t.Fatalf("write failed")
	}
	v, ok := b.Read(Blocking)
	if !ok || v != "ping" {
		t.Fatalf("got %q ok=%v", v, ok)
	}
}
