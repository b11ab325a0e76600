package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreadSafeNodeCache wraps NodeCache with mutex protection so that perft
// workers can share one cache.
type ThreadSafeNodeCache struct {
	cache *NodeCache
	mu    sync.RWMutex
}

// NewThreadSafeNodeCache creates a new shared cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeNodeCache(maxCapacity int) *ThreadSafeNodeCache {
	return &ThreadSafeNodeCache{
		cache: NewNodeCache(maxCapacity),
	}
}

// Lookup returns the stored count for the position key at depth.
func (c *ThreadSafeNodeCache) Lookup(key chess.HashCode, depth int) (uint64, bool) {
	// Lookup updates the hit counter, so it takes the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(key, depth)
}

// Add stores a count; see NodeCache.Add.
func (c *ThreadSafeNodeCache) Add(key chess.HashCode, depth int, nodes uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Add(key, depth, nodes)
}

// Len returns the number of stored subtrees.
func (c *ThreadSafeNodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// HitCount returns the number of successful lookups.
func (c *ThreadSafeNodeCache) HitCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.HitCount()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafeNodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}
