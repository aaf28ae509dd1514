//go:build !solution

// Package freqtable implements a counting table that remembers the order in
// which keys were first inserted.
package freqtable

import (
	"github.com/google/btree"
	"golang.org/x/exp/slices"
)

// Entry is a single key of the table with its counter.
type Entry[K comparable] struct {
	Key   K
	Count int
	// Index is the zero-based rank of the first occurrence of Key.
	Index int
}

// Table counts keys. Iteration follows first insertion.
//
// Table is not safe for concurrent use.
type Table[K comparable] struct {
	index   map[K]int  // key -> position in entries
	entries []Entry[K] // in first-occurrence order
}

// New creates an empty table.
func New[K comparable]() *Table[K] {
	return NewWithCapacity[K](0)
}

// NewWithCapacity creates an empty table sized for n distinct keys.
func NewWithCapacity[K comparable](n int) *Table[K] {
	if n < 0 {
		n = 0
	}
	return &Table[K]{
		index:   make(map[K]int, n),
		entries: make([]Entry[K], 0, n),
	}
}

// Inc increments the counter of key and returns its new value.
// A key seen for the first time gets the counter 1.
func (t *Table[K]) Inc(key K) int {
	if pos, ok := t.index[key]; ok {
		t.entries[pos].Count++
		return t.entries[pos].Count
	}

	pos := len(t.entries)
	t.index[key] = pos
	t.entries = append(t.entries, Entry[K]{Key: key, Count: 1, Index: pos})
	return 1
}

// Count returns the counter of key.
func (t *Table[K]) Count(key K) (int, bool) {
	pos, ok := t.index[key]
	if !ok {
		return 0, false
	}
	return t.entries[pos].Count, true
}

// Len returns the number of distinct keys.
func (t *Table[K]) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counters.
func (t *Table[K]) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Range calls f for every key in first-occurrence order.
// Iteration stops when f returns false.
func (t *Table[K]) Range(f func(key K, count int) bool) {
	for _, e := range t.entries {
		if !f(e.Key, e.Count) {
			return
		}
	}
}

// Entries returns a copy of the entries in first-occurrence order.
func (t *Table[K]) Entries() []Entry[K] {
	return slices.Clone(t.entries)
}

// Filter returns the entries accepted by pred, in first-occurrence order.
func (t *Table[K]) Filter(pred func(Entry[K]) bool) []Entry[K] {
	var res []Entry[K]
	for _, e := range t.entries {
		if pred(e) {
			res = append(res, e)
		}
	}
	return res
}

// Ranked returns the entries ordered by counter, largest first.
// Entries with equal counters keep their first-occurrence order.
func (t *Table[K]) Ranked() []Entry[K] {
	return rank(t.entries)
}

const btreeDegree = 16

// byRank orders by counter descending, then by first occurrence.
// Index is unique, so the tree never replaces an item.
func byRank[K comparable](a, b Entry[K]) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Index < b.Index
}

func rank[K comparable](entries []Entry[K]) []Entry[K] {
	tree := btree.NewG[Entry[K]](btreeDegree, byRank[K])
	for _, e := range entries {
		tree.ReplaceOrInsert(e)
	}

	res := make([]Entry[K], 0, tree.Len())
	tree.Ascend(func(e Entry[K]) bool {
		res = append(res, e)
		return true
	})
	return res
}

// Rank orders an arbitrary subset of entries the same way Ranked does.
func Rank[K comparable](entries []Entry[K]) []Entry[K] {
	return rank(entries)
}
