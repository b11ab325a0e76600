package hashing

import (
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Bound tells how a stored score relates to the true value.
type Bound uint8

const (
	// NoBound marks an unused slot.
	NoBound Bound = iota
	// Exact scores fell inside the search window.
	Exact
	// Lower scores failed high; the true value is at least the score.
	Lower
	// Upper scores failed low; the true value is at most the score.
	Upper
)

// Entry is one transposition table slot.
type Entry struct {
	Key   chess.HashCode
	Depth int
	Score int
	Bound Bound
	Move  chess.Move
}

// Table is a fixed-size transposition table indexed by the low bits of the
// position key. A slot is replaced when the new entry is for a different
// position or was searched at least as deep.
type Table struct {
	entries []Entry
	mask    uint64

	probes atomic.Int64
	hits   atomic.Int64
}

// NewTable creates a table holding the largest power of two entries not
// above size, and at least one.
func NewTable(size int) *Table {
	n := 1
	for n*2 <= size {
		n *= 2
	}
	return &Table{
		entries: make([]Entry, n),
		mask:    uint64(n - 1),
	}
}

// Probe returns the entry stored for key, if any.
func (t *Table) Probe(key chess.HashCode) (Entry, bool) {
	t.probes.Add(1)
	e := t.entries[uint64(key)&t.mask]
	if e.Bound == NoBound || e.Key != key {
		return Entry{}, false
	}
	t.hits.Add(1)
	return e, true
}

// Store records an entry, subject to the replacement rule.
func (t *Table) Store(e Entry) {
	slot := &t.entries[uint64(e.Key)&t.mask]
	if slot.Bound != NoBound && slot.Key == e.Key && slot.Depth > e.Depth {
		return
	}
	*slot = e
}

// Clear empties every slot and resets the statistics.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.probes.Store(0)
	t.hits.Store(0)
}

// Capacity returns the number of slots.
func (t *Table) Capacity() int {
	return len(t.entries)
}

// Stats returns the number of probes and hits since the last Clear.
func (t *Table) Stats() (probes, hits int64) {
	return t.probes.Load(), t.hits.Load()
}
