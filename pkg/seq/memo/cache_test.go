package memo

import (
	"sync"
	"testing"
)

func TestCache_FirstWriteWins(t *testing.T) {
	t.Parallel()

	c := newCache[string, int]()

	v, existing := c.loadOrStore("k", func() int { return 1 })
	if existing || v != 1 {
		t.Fatalf("expected fresh entry 1, got %d (existing=%v)", v, existing)
	}

	v, existing = c.loadOrStore("k", func() int { return 2 })
	if !existing || v != 1 {
		t.Fatalf("entry must never be overwritten, got %d (existing=%v)", v, existing)
	}

	if c.size() != 1 {
		t.Errorf("expected one key, got %d", c.size())
	}
}

func TestCache_CreateRunsOncePerKey(t *testing.T) {
	t.Parallel()

	c := newCache[int, int]()
	created := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// create runs under the lock, so the counter needs no atomics
			c.loadOrStore(7, func() int {
				created++
				return created
			})
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("create must run once per key, ran %d times", created)
	}
}
