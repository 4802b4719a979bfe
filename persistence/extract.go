// SPDX-License-Identifier: MIT
package persistence

import (
	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
)

// Extract builds a Bars value from a reduced boundary matrix and its
// accompanying triangular (representative) matrix, following the
// classification steps of spec.md §4.5:
//
//  1. Mark infinite[0..N) all true; for every non-empty reduced column c,
//     with b = max(c) (birth) and d = c (death), set infinite[b] and
//     infinite[d] false.
//  2. Every cell c with infinite[c] still true becomes an infinite bar
//     (birth=c).
//  3. Every non-empty reduced column c becomes a finite bar (birth=max(c),
//     death=c), with dimension taken from the birth cell, not the death
//     cell — a reduced column's pivot (the birth) is one dimension lower
//     than the column itself (the death), so attributing the pair's
//     dimension to death would be off by one.
//
// Representatives are read from triangular at the birth index for every
// bar, finite or infinite, matching how an infinite bar's own column in
// triangular already is its representative (Extract never copies —
// the returned Bars aliases triangular's columns, so triangular should not
// be reused after this call).
func Extract(reduced *matrix.Matrix, triangular *matrix.Matrix, dims []int8) (*Bars, error) {
	n := reduced.NColumns()
	infinite := make([]bool, n)
	for i := range infinite {
		infinite[i] = true
	}
	for c := 0; c < n; c++ {
		if reduced.Get(c).Empty() {
			continue
		}
		b := reduced.Get(c).Max()
		infinite[b] = false
		infinite[c] = false
	}

	var birth, death []int
	var repCols []column.Column
	var barDims []int8

	for c := 0; c < n; c++ {
		if !infinite[c] {
			continue
		}
		birth = append(birth, c)
		death = append(death, -1)
		repCols = append(repCols, triangular.Get(c))
		barDims = append(barDims, dims[c])
	}

	for c := 0; c < n; c++ {
		if reduced.Get(c).Empty() {
			continue
		}
		b := reduced.Get(c).Max()
		birth = append(birth, b)
		death = append(death, c)
		repCols = append(repCols, triangular.Get(b))
		barDims = append(barDims, dims[b])
	}

	rep := matrix.NewFromColumns(repCols, barDims)

	return &Bars{
		representative: rep,
		birth:          birth,
		death:          death,
		view:           matrix.NewView(barDims),
	}, nil
}
