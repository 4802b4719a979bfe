// SPDX-License-Identifier: MIT
package dualize

import (
	"sort"
	"sync/atomic"

	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/internal/fanout"
	"github.com/katalvlaran/steenroder/matrix"
)

// Dualize builds the anti-transpose M* of m: for an N-column matrix of
// dimension span D, M*[N-1-r] contains {N-1-c : r is an entry of M[c]},
// sorted ascending, with d*(N-1-c) = (D-1) - d(c).
//
// Implemented as two fanout.Run passes mirroring boundary_matrix.hpp's
// `#pragma omp parallel for` regions: a size pass that tallies, per worker,
// how many primal entries land in each dual column (merged sequentially —
// cheap relative to the scan itself), then a scatter pass that writes into
// pre-sized slices using one atomic cursor per dual column so concurrent
// workers never race on the same write slot.
//
// Dualize is an involution up to the dimension convention: dualizing twice
// returns a matrix equal to m (spec.md §8 property 3).
func Dualize(m *matrix.Matrix) (*matrix.Matrix, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := m.NColumns()
	if n == 0 {
		return matrix.New(0), nil
	}
	d := m.NDimensions()

	workers := fanout.NumWorkers(n)
	localCounts := fanout.NewScratch[[]int](workers)
	for w := 0; w < workers; w++ {
		*localCounts.Get(w) = make([]int, n)
	}

	fanout.Run(n, func(id, lo, hi int) {
		buf := localCounts.Get(id)
		for c := lo; c < hi; c++ {
			for _, r := range m.Get(c).Elements() {
				(*buf)[n-1-r]++
			}
		}
	})

	dualSize := make([]int, n)
	for w := 0; w < workers; w++ {
		buf := *localCounts.Get(w)
		for i, v := range buf {
			dualSize[i] += v
		}
	}

	dualEntries := make([][]int, n)
	for i, sz := range dualSize {
		dualEntries[i] = make([]int, sz)
	}
	cursors := make([]atomic.Int64, n)

	fanout.Run(n, func(_, lo, hi int) {
		for c := lo; c < hi; c++ {
			dc := n - 1 - c
			for _, r := range m.Get(c).Elements() {
				dr := n - 1 - r
				pos := cursors[dr].Add(1) - 1
				dualEntries[dr][pos] = dc
			}
		}
	})

	dual := matrix.New(n)
	for i := 0; i < n; i++ {
		sort.Ints(dualEntries[i])
		dim := int8(int(d) - 1 - int(m.Dim(n-1-i)))
		dual.Append(column.NewSortedColumn(dualEntries[i]), dim)
	}

	return dual, nil
}
