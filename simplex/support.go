// SPDX-License-Identifier: MIT
package simplex

import (
	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
)

// Support holds the precomputed vertex support of every cell of dimension
// d or d+k, keyed by cell index.
type Support struct {
	cells map[int]column.Column
	view  *matrix.View
}

// Build computes the vertex support of every cell in view's dimension-d
// and dimension-(d+k) bands (build_simplex/init_simplices of
// simplex_matrix.hpp). A cell's support is the union of its facets'
// supports, with a dimension-1 cell's support being its own boundary (the
// two vertices it spans) — the recursion's base case. Intermediate
// supports of lower-dimension cells visited along the way are cached too,
// even though only d and d+k are exposed by IndexOf.
func Build(boundary *matrix.Matrix, view *matrix.View, d, dpk int8) (*Support, error) {
	cache := make(map[int]column.Column)

	targets := make([]int, 0, view.Count(d)+view.Count(dpk))
	targets = append(targets, view.Band(d)...)
	targets = append(targets, view.Band(dpk)...)

	for _, cell := range targets {
		if _, ok := cache[cell]; ok {
			continue
		}
		computeSupport(boundary, cell, cache)
	}

	return &Support{cells: cache, view: view}, nil
}

// frame is one pending cell in the iterative post-order walk.
type frame struct {
	cell           int
	childrenPushed bool
}

// computeSupport fills cache[start] (and every not-yet-cached facet it
// transitively depends on) using an explicit stack instead of recursion,
// so filtration depth never grows the goroutine's call stack.
func computeSupport(boundary *matrix.Matrix, start int, cache map[int]column.Column) {
	stack := []frame{{cell: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if _, ok := cache[top.cell]; ok {
			stack = stack[:len(stack)-1]
			continue
		}

		if boundary.Dim(top.cell) == 0 {
			cache[top.cell] = column.NewSortedColumn([]int{top.cell})
			stack = stack[:len(stack)-1]
			continue
		}

		if boundary.Dim(top.cell) <= 1 {
			cache[top.cell] = boundary.Get(top.cell).Clone()
			stack = stack[:len(stack)-1]
			continue
		}

		if !top.childrenPushed {
			top.childrenPushed = true
			pending := false
			for _, r := range boundary.Get(top.cell).Elements() {
				if _, ok := cache[r]; !ok {
					stack = append(stack, frame{cell: r})
					pending = true
				}
			}
			if pending {
				continue
			}
		}

		acc := column.NewSortedColumn(nil)
		var scratch []int
		for _, r := range boundary.Get(top.cell).Elements() {
			column.Union(acc, cache[r], &scratch)
		}
		cache[top.cell] = acc
		stack = stack[:len(stack)-1]
	}
}

// Get returns the support column of cell, or nil if Build computed no
// support for it (a cell outside the d/d+k bands that was not visited as
// a facet of one of their cells).
func (s *Support) Get(cell int) column.Column { return s.cells[cell] }

// IndexOf mirrors SimplexMatrix::is_in: scans dimension dim's view band for
// the first cell index >= minIdx whose support equals candidate, returning
// it, or -1 if none matches.
func (s *Support) IndexOf(minIdx int, dim int8, candidate column.Column) int {
	for _, cell := range s.view.Band(dim) {
		if cell < minIdx {
			continue
		}
		if column.Equal(s.cells[cell], candidate) {
			return cell
		}
	}

	return -1
}
