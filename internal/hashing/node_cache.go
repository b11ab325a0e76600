package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// nodeKey identifies a perft subtree: the position and the remaining depth.
type nodeKey struct {
	key   chess.HashCode
	depth int
}

// NodeCache remembers perft leaf counts of subtrees already walked, so that
// transpositions are counted without being searched again.
type NodeCache struct {
	// counts maps a subtree to its leaf count
	counts map[nodeKey]uint64
	// maxCapacity limits the number of stored subtrees (0 = unlimited)
	maxCapacity int
	// hitCount tracks successful lookups
	hitCount int
}

// NewNodeCache creates an empty cache.
// maxCapacity of 0 means unlimited capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		counts:      make(map[nodeKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for the position key at depth.
func (c *NodeCache) Lookup(key chess.HashCode, depth int) (uint64, bool) {
	n, ok := c.counts[nodeKey{key, depth}]
	if ok {
		c.hitCount++
	}
	return n, ok
}

// Add stores a count. It returns false when the cache is full and the
// subtree was not already present.
func (c *NodeCache) Add(key chess.HashCode, depth int, nodes uint64) bool {
	k := nodeKey{key, depth}
	if _, ok := c.counts[k]; !ok && c.IsFull() {
		return false
	}
	c.counts[k] = nodes
	return true
}

// Len returns the number of stored subtrees.
func (c *NodeCache) Len() int {
	return len(c.counts)
}

// HitCount returns the number of successful lookups.
func (c *NodeCache) HitCount() int {
	return c.hitCount
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.counts) >= c.maxCapacity
}

// Reset clears the cache.
func (c *NodeCache) Reset() {
	c.counts = make(map[nodeKey]uint64)
	c.hitCount = 0
}
