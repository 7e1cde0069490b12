// Package listcache holds the per-view cached collection every list
// controller renders from. The cache is replaced wholesale by each load;
// single-item edits never patch it in place. A generation counter drops
// responses from loads the user has since navigated away from.
package listcache

import "sync"

type Cache[T any] struct {
	mu    sync.RWMutex
	items []T
	gen   uint64
}

func New[T any]() *Cache[T] {
	return &Cache[T]{}
}

// Begin marks the start of a load and returns its generation token.
// Any load begun later invalidates this one.
func (c *Cache[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen
}

// Complete installs the loaded items if gen is still current. A stale
// completion is discarded and reported as false.
func (c *Cache[T]) Complete(gen uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.items = items
	return true
}

// Snapshot returns the cached items. The slice header is shared;
// renderers must treat it as read-only.
func (c *Cache[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Len reports the cached item count.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Invalidate clears the cache and bumps the generation so in-flight
// loads cannot resurrect old data.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.items = nil
}
