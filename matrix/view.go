// SPDX-License-Identifier: MIT
package matrix

// View is a permutation of cell indices grouped by dimension, plus an
// offset table — the Go rendering of ViewMatrix::create_view
// (sorted_matrix.hpp). It never reorders Matrix.columns physically: cell
// index (= birth label) and processing order stay decoupled, so a View can
// be rebuilt cheaply whenever a reduction changes which cells are "live"
// without touching the underlying Matrix.
type View struct {
	order []int // cell indices, grouped by dimension, ascending within a group
	start []int // start[d] is the offset into order where dimension d begins
	count []int // count[d] is the number of cells of dimension d
}

// NewView groups cell indices by dims into dimension-contiguous bands,
// preserving ascending cell-index order within each band (a stable sort by
// dimension, since dims is already index-ordered by construction).
// Complexity: O(NColumns + maxDim).
func NewView(dims []int8) *View {
	var maxDim int8 = -1
	for _, d := range dims {
		if d > maxDim {
			maxDim = d
		}
	}
	nDims := int(maxDim) + 1
	if nDims < 0 {
		nDims = 0
	}

	count := make([]int, nDims)
	for _, d := range dims {
		count[d]++
	}
	start := make([]int, nDims)
	for d := 1; d < nDims; d++ {
		start[d] = start[d-1] + count[d-1]
	}

	cursor := append([]int(nil), start...)
	order := make([]int, len(dims))
	for c, d := range dims {
		order[cursor[d]] = c
		cursor[d]++
	}

	return &View{order: order, start: start, count: count}
}

// NDimensions returns the number of dimension bands tracked by the view.
func (v *View) NDimensions() int8 { return int8(len(v.start)) }

// Band returns the cell indices of dimension d, in ascending order.
// Returns nil if d is out of range (an empty dimension, not an error: a
// filtration legitimately may have no cells at some dimension between 0
// and D-1... but a genuinely out-of-range d is still the caller's bug).
func (v *View) Band(d int8) []int {
	if int(d) < 0 || int(d) >= len(v.start) {
		return nil
	}

	return v.order[v.start[d] : v.start[d]+v.count[d]]
}

// BandChecked is Band, but reports a genuinely out-of-range d (negative, or
// >= NDimensions()) via ErrDimensionOutOfRange instead of silently
// returning nil — for boundaries where d is caller/user-supplied (e.g. a
// CLI's -d/-k flags) rather than an internally-derived dimension band that
// may legitimately be empty.
func (v *View) BandChecked(d int8) ([]int, error) {
	if int(d) < 0 || int(d) >= len(v.start) {
		return nil, ErrDimensionOutOfRange
	}

	return v.Band(d), nil
}

// Count returns the number of cells of dimension d.
func (v *View) Count(d int8) int {
	if int(d) < 0 || int(d) >= len(v.count) {
		return 0
	}

	return v.count[d]
}

// All returns the full permutation, dimension-ascending.
func (v *View) All() []int { return v.order }
