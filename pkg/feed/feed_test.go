package feed

import (
	"sync"
	"testing"
	"time"
)

func TestLatest_Empty(t *testing.T) {
	l := New[int]()
	if _, ok := l.Poll(); ok {
		t.Fatal("Poll on empty feed returned a value")
	}
	if _, ok := l.Last(); ok {
		t.Fatal("Last on empty feed reported a value")
	}
}

func TestLatest_KeepsNewest(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 5; i++ {
		l.Publish(i)
	}
	v, ok := l.Poll()
	if !ok || v != 5 {
		t.Fatalf("Poll = %v, %v; want 5, true", v, ok)
	}
	if _, ok := l.Poll(); ok {
		t.Fatal("stale values were kept")
	}
	if v, ok := l.Last(); !ok || v != 5 {
		t.Fatalf("Last = %v, %v; want 5, true", v, ok)
	}
}

func TestLatest_PublishNeverBlocks(t *testing.T) {
	l := New[int]()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			l.Publish(i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Publish blocked without a consumer")
	}
	if v, _ := l.Poll(); v != 9999 {
		t.Errorf("Poll = %d; want 9999", v)
	}
}

func TestLatest_ConcurrentConsumer(t *testing.T) {
	l := New[int]()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 1000; i++ {
			l.Publish(i)
		}
	}()
	prev := 0
	for prev < 1000 {
		if v, ok := l.Poll(); ok {
			if v <= prev {
				t.Fatalf("value went backwards: %d after %d", v, prev)
			}
			prev = v
		}
	}
	wg.Wait()
}
