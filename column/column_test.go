// SPDX-License-Identifier: MIT
package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newColumns(entries []int) []Column {
	cp := append([]int(nil), entries...)

	bt := NewBitTreeColumn(4096)
	bt.Materialize(cp)

	return []Column{
		NewSortedColumn(append([]int(nil), entries...)),
		bt,
	}
}

func TestColumn_MaxAndPopMax(t *testing.T) {
	for _, c := range newColumns([]int{2, 5, 9}) {
		assert.Equal(t, 9, c.Max())
		c.PopMax()
		assert.Equal(t, 5, c.Max())
		assert.Equal(t, 2, c.Len())
	}
}

func TestColumn_EmptyMaxIsMinusOne(t *testing.T) {
	for _, c := range newColumns(nil) {
		assert.Equal(t, -1, c.Max())
		assert.True(t, c.Empty())
		c.PopMax() // must not panic
	}
}

func TestColumn_Clear(t *testing.T) {
	for _, c := range newColumns([]int{1, 2, 3}) {
		c.Clear()
		assert.True(t, c.Empty())
		assert.Equal(t, 0, c.Len())
		assert.Equal(t, -1, c.Max())
	}
}

func TestColumn_Clone_Independent(t *testing.T) {
	for _, c := range newColumns([]int{1, 4, 7}) {
		cp := c.Clone()
		cp.PopMax()
		assert.Equal(t, 7, c.Max(), "mutating the clone must not affect the original")
		assert.Equal(t, 4, cp.Max())
	}
}

func TestSortedColumn_FromUnsorted_DedupesAndSorts(t *testing.T) {
	c := NewSortedColumnFromUnsorted([]int{5, 1, 3, 1, 5, 2})
	require.Equal(t, []int{1, 2, 3, 5}, c.Elements())
}

func TestSortedColumn_ContainsAndRank(t *testing.T) {
	c := NewSortedColumn([]int{2, 4, 6, 8})
	assert.True(t, c.Contains(4))
	assert.False(t, c.Contains(5))
	assert.Equal(t, 0, c.Rank(1))
	assert.Equal(t, 2, c.Rank(5))
	assert.Equal(t, 4, c.Rank(9))
}

// AddInto(a, a) must always empty a (self-cancellation mod 2).
func TestAddInto_SelfCancels(t *testing.T) {
	for _, c := range newColumns([]int{1, 2, 3}) {
		var scratch []int
		AddInto(c, c.Clone(), &scratch)
		assert.True(t, c.Empty())
	}
}

// AddInto(a, empty) must leave a unchanged.
func TestAddInto_WithEmptyIsNoop(t *testing.T) {
	for _, c := range newColumns([]int{1, 2, 3}) {
		empty := c.Clone()
		empty.Clear()
		var scratch []int
		before := append([]int(nil), c.Elements()...)
		AddInto(c, empty, &scratch)
		assert.Equal(t, before, c.Elements())
	}
}

// Applying AddInto(a, b) twice returns a to its original value, since
// x ⊕ b ⊕ b = x for all x.
func TestAddInto_TwiceIsIdentity(t *testing.T) {
	for i, ca := range newColumns([]int{1, 3, 5, 7}) {
		cb := newColumns([]int{2, 3, 6, 7})[i]
		before := append([]int(nil), ca.Elements()...)

		var scratch []int
		AddInto(ca, cb.Clone(), &scratch)
		AddInto(ca, cb.Clone(), &scratch)

		assert.Equal(t, before, ca.Elements())
	}
}

func TestAddInto_SymmetricDifference(t *testing.T) {
	for i, ca := range newColumns([]int{1, 2, 3, 10}) {
		cb := newColumns([]int{2, 3, 4})[i]
		var scratch []int
		AddInto(ca, cb, &scratch)
		assert.Equal(t, []int{1, 4, 10}, ca.Elements())
	}
}

func TestUnion(t *testing.T) {
	for i, ca := range newColumns([]int{1, 3, 5}) {
		cb := newColumns([]int{2, 3, 4})[i]
		var scratch []int
		Union(ca, cb, &scratch)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ca.Elements())
	}
}

func TestDifference(t *testing.T) {
	for i, ca := range newColumns([]int{1, 2, 3, 4}) {
		cb := newColumns([]int{2, 4})[i]
		var scratch []int
		Difference(ca, cb, &scratch)
		assert.Equal(t, []int{1, 3}, ca.Elements())
	}
}

func TestEqual(t *testing.T) {
	a := NewSortedColumn([]int{1, 2, 3})
	b := NewBitTreeColumn(16)
	b.Materialize([]int{1, 2, 3})
	assert.True(t, Equal(a, b))

	b.PopMax()
	assert.False(t, Equal(a, b))
}

// BitTreeColumn-specific: verify the tree stays consistent across a longer
// sequence of inserts/removals spanning multiple 64-bit blocks.
func TestBitTreeColumn_CrossBlock(t *testing.T) {
	bt := NewBitTreeColumn(512)
	want := []int{0, 63, 64, 127, 128, 255, 256, 400, 511}
	bt.Materialize(append([]int(nil), want...))
	assert.Equal(t, want, bt.Elements())
	assert.Equal(t, len(want), bt.Len())

	bt.PopMax()
	assert.Equal(t, 400, bt.Max())
}
