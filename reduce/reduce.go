// SPDX-License-Identifier: MIT
package reduce

import (
	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/internal/fanout"
	"github.com/katalvlaran/steenroder/matrix"
)

// identity returns the n-column matrix where column c is {c}, the seed
// value for a triangular/representative matrix (sorted_bars.hpp's
// ViewInfiniteBars/Bars constructor).
func identity(n int) *matrix.Matrix {
	t := matrix.New(n)
	for c := 0; c < n; c++ {
		t.Append(column.NewSortedColumn([]int{c}), 0)
	}

	return t
}

// reducer holds the state shared by one reduction run: the matrix being
// reduced in place, the triangular matrix accumulating column operations,
// and the pivot ownership table. Grounded in the teacher's procedural
// "runner" style (dijkstra.Dijkstra's staged helper structure), generalized
// here into explicit init/fold stages.
type reducer struct {
	m          *matrix.Matrix
	triangular *matrix.Matrix
	owner      []int // owner[row] = column index currently owning row as its pivot, or -1

	scratchM []int // AddInto scratch for m, reused across folds
	scratchT []int // AddInto scratch for triangular, reused across folds
}

func newReducer(m *matrix.Matrix) *reducer {
	n := m.NColumns()
	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}

	return &reducer{
		m:          m,
		triangular: identity(n),
		owner:      owner,
	}
}

// fold reduces column col until its pivot is unowned or it empties,
// recording every owner it folds in into the triangular matrix. Returns
// the column's final pivot (-1 if it emptied).
func (r *reducer) fold(col int) int {
	pivot := r.m.Get(col).Max()
	for pivot != -1 && r.owner[pivot] != -1 {
		src := r.owner[pivot]
		column.AddInto(r.m.Get(col), r.m.Get(src), &r.scratchM)
		column.AddInto(r.triangular.Get(col), r.triangular.Get(src), &r.scratchT)
		pivot = r.m.Get(col).Max()
	}

	return pivot
}

// Standard reduces m to a triangular form column by column, left to right,
// with no dimension requirement — grounded in reduction.hpp's
// StandardReduction. m is mutated in place to become the reduced matrix;
// the returned matrix is the accompanying triangular/representative
// matrix. Used by the §4.6.3 mixed (cohomology + Steenrod) reduction,
// where the twist invariant does not hold.
func Standard(m *matrix.Matrix) (*matrix.Matrix, error) {
	r := newReducer(m)
	for c := 0; c < m.NColumns(); c++ {
		pivot := r.fold(c)
		if pivot != -1 {
			r.owner[pivot] = c
		}
	}

	return r.triangular, nil
}

// Twist reduces m dimension-ascending, using view to iterate each
// dimension's columns in filtration order, and additionally clears the
// matched pivot column after each successful pairing (the twist
// optimization of reduction.hpp's TwistReduction): a column of dimension
// d-1 that is some dimension-d column's pivot is already known to be
// paired, so its own reduction work can be skipped entirely. Mirrors the
// original's dimension loop bound (0..D-2): the top dimension band is
// never processed, since no column of dimension D has yet been observed to
// pair against it.
//
// m is mutated in place; the returned matrix is the triangular matrix.
func Twist(m *matrix.Matrix, view *matrix.View, opts ...Option) (*matrix.Matrix, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := newReducer(m)
	nDims := view.NDimensions()
	if nDims < 2 {
		return r.triangular, nil
	}

	for dim := int8(0); dim < nDims-1; dim++ {
		band := view.Band(dim)
		if cfg.parallelDimensions {
			r.precomputePivots(band)
		}
		for _, col := range band {
			pivot := r.fold(col)
			if pivot != -1 {
				r.owner[pivot] = col
				r.m.Get(pivot).Clear()
			}
		}
	}

	return r.triangular, nil
}

// precomputePivots warms band's columns' Max() in parallel before the
// sequential fold pass below. This is the one piece of a dimension band
// that is genuinely independent: reading each column's current pivot
// touches no shared state and mutates nothing, unlike the fold/ownership
// loop itself, where a later column in the same band may depend on a pivot
// claimed by an earlier one and so cannot be reordered. A real barrier
// (fanout.Run blocks until every worker returns) separates this pass from
// the sequential one that follows, mirroring
// AbstractPivotColumn::_sync/release_pivot_col's sync-before-next-stage
// discipline.
func (r *reducer) precomputePivots(band []int) {
	fanout.Run(len(band), func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			_ = r.m.Get(band[i]).Max()
		}
	})
}
