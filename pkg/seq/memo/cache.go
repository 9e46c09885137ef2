package memo

import "sync"

// cache is the first-write-wins key store owned by a memoized sequence. Once
// a key is present its entry is never replaced.
type cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

func newCache[K comparable, V any]() *cache[K, V] {
	return &cache[K, V]{entries: make(map[K]V)}
}

// loadOrStore returns the entry for k, creating it with create when absent.
// create runs under the cache lock, so for a given key it runs at most once
// across all callers. The second return reports whether the entry already
// existed.
func (c *cache[K, V]) loadOrStore(k K, create func() V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[k]; ok {
		return v, true
	}
	v := create()
	c.entries[k] = v
	return v, false
}

// size reports the number of cached keys.
func (c *cache[K, V]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
