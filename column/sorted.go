// SPDX-License-Identifier: MIT
package column

import "sort"

// SortedColumn is the default Column implementation: a strictly increasing
// []int. It is the Go rendering of stn::VectorColumn (vector_column.hpp):
// a thin value type over a slice, with the pivot as the last element.
type SortedColumn struct {
	entries []int
}

// NewSortedColumn builds a SortedColumn from entries, which MUST already be
// strictly increasing and duplicate-free (the caller's responsibility — use
// NewSortedColumnFromUnsorted when that is not guaranteed). entries is
// retained by reference.
func NewSortedColumn(entries []int) *SortedColumn {
	return &SortedColumn{entries: entries}
}

// NewSortedColumnFromUnsorted sorts a defensive copy of entries and removes
// duplicates, returning a valid SortedColumn. Used by ASCII/binary loaders
// (ioformat) where input ordering is not guaranteed (spec §6: "sorted or
// to-be-sorted row indices").
func NewSortedColumnFromUnsorted(entries []int) *SortedColumn {
	cp := append([]int(nil), entries...)
	sort.Ints(cp)
	n := 0
	for i, v := range cp {
		if i == 0 || v != cp[n-1] {
			cp[n] = v
			n++
		}
	}

	return &SortedColumn{entries: cp[:n]}
}

// Max returns the pivot, or -1 if empty. Complexity: O(1).
func (c *SortedColumn) Max() int {
	if len(c.entries) == 0 {
		return -1
	}

	return c.entries[len(c.entries)-1]
}

// PopMax removes the pivot. No-op if empty. Complexity: O(1).
func (c *SortedColumn) PopMax() {
	if len(c.entries) == 0 {
		return
	}
	c.entries = c.entries[:len(c.entries)-1]
}

// Clear empties the column. Complexity: O(1).
func (c *SortedColumn) Clear() {
	c.entries = c.entries[:0]
}

// Len returns the number of entries. Complexity: O(1).
func (c *SortedColumn) Len() int { return len(c.entries) }

// Empty reports whether the column has no entries. Complexity: O(1).
func (c *SortedColumn) Empty() bool { return len(c.entries) == 0 }

// Elements returns the backing slice directly; callers must not mutate it.
func (c *SortedColumn) Elements() []int { return c.entries }

// Materialize installs sorted as the column's new contents by reference.
func (c *SortedColumn) Materialize(sorted []int) { c.entries = sorted }

// Clone returns an independent copy.
func (c *SortedColumn) Clone() Column {
	return &SortedColumn{entries: append([]int(nil), c.entries...)}
}

// Contains reports whether v is present, via binary search.
// Complexity: O(log n).
func (c *SortedColumn) Contains(v int) bool {
	i := sort.SearchInts(c.entries, v)

	return i < len(c.entries) && c.entries[i] == v
}

// Rank returns the number of entries strictly less than v — equivalently
// the insertion point sort.SearchInts would return. Used by the Sq^k
// purity test (steenrod package) to reproduce std::lower_bound ranks.
// Complexity: O(log n).
func (c *SortedColumn) Rank(v int) int {
	return sort.SearchInts(c.entries, v)
}
