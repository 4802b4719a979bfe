// SPDX-License-Identifier: MIT
package steenroder

import (
	"fmt"

	"github.com/katalvlaran/steenroder/dualize"
	"github.com/katalvlaran/steenroder/matrix"
	"github.com/katalvlaran/steenroder/persistence"
	"github.com/katalvlaran/steenroder/reduce"
	"github.com/katalvlaran/steenroder/simplex"
	"github.com/katalvlaran/steenroder/steenrod"
)

// Result holds everything Compute produces for one (d, k) query: the
// ordinary cohomology barcode (in its native dual-index, relative-dimension
// form) and the Steenrod Sq^k barcode coupled to it.
type Result struct {
	// Cohomology holds every persistent cohomology bar extracted from the
	// dualized boundary matrix, both finite and infinite, indexed by
	// relative dimension (D-1-dim), not the primal dimension — call
	// Cohomology.Dualize(NCells) to remap birth/death labels back into
	// primal cell-index space before reporting them externally.
	Cohomology *persistence.Bars

	// SteenrodBars holds the persistent barcode of Sq^k acting on
	// degree-d cohomology, dimension d+k, in the same dual-index space as
	// Cohomology's representatives.
	SteenrodBars *steenrod.Bars

	// NCells is the number of cells in the original (primal) complex.
	NCells int

	// NDimensions is the number of distinct dimensions (0..NDimensions-1)
	// present in the original complex.
	NDimensions int8
}

// Compute runs the full pipeline of spec.md §4.7 on boundary (the primal
// boundary matrix, cell index doubling as filtration order), computing the
// persistent barcode of Sq^k on degree-d cohomology.
//
// A (d, k) query whose d or d+k falls outside [0, boundary.NDimensions())
// is not an error (spec.md §7): Compute returns a Result whose SteenrodBars
// is simply empty.
func Compute(boundary *matrix.Matrix, d, k int8) (*Result, error) {
	if err := boundary.Validate(); err != nil {
		return nil, fmt.Errorf("steenroder: invalid boundary matrix: %w", err)
	}

	nCells := boundary.NColumns()
	nDims := boundary.NDimensions()
	dpk := d + k

	result := &Result{NCells: nCells, NDimensions: nDims}

	dual, err := dualize.Dualize(boundary)
	if err != nil {
		return nil, fmt.Errorf("steenroder: dualize: %w", err)
	}

	dualDims := make([]int8, nCells)
	for c := 0; c < nCells; c++ {
		dualDims[c] = dual.Dim(c)
	}
	dualView := matrix.NewView(dualDims)

	triangular, err := reduce.Twist(dual, dualView)
	if err != nil {
		return nil, fmt.Errorf("steenroder: reduce: %w", err)
	}

	cohomology, err := persistence.Extract(dual, triangular, dualDims)
	if err != nil {
		return nil, fmt.Errorf("steenroder: extract: %w", err)
	}
	result.Cohomology = cohomology

	if d < 0 || dpk < 0 || d >= nDims || dpk >= nDims {
		result.SteenrodBars = steenrod.NewBars(relativeDim(nDims, dpk))
		return result, nil
	}

	support, err := simplex.Build(boundary, matrix.NewView(primalDims(boundary)), d, dpk)
	if err != nil {
		return nil, fmt.Errorf("steenroder: simplex support: %w", err)
	}

	steenrodBars := steenrod.NewBars(relativeDim(nDims, dpk))
	relD := relativeDim(nDims, d)
	for pass := 0; pass < 2; pass++ {
		wantInfinite := pass == 1
		for i := 0; i < cohomology.NBars(); i++ {
			if cohomology.Dim(i) != relD || cohomology.Infinite(i) != wantInfinite {
				continue
			}
			sq := steenrod.SquareRepresentative(cohomology.Representative(i), support, d, k, nCells)
			if sq.Empty() {
				continue
			}
			steenrodBars.Add(cohomology.Birth(i), sq)
		}
	}

	if err := steenrod.ComputeDeaths(cohomology, steenrodBars); err != nil {
		return nil, fmt.Errorf("steenroder: death coupling: %w", err)
	}
	result.SteenrodBars = steenrodBars

	return result, nil
}

// relativeDim converts an absolute (primal) dimension into the relative
// dimension dualize.Dualize assigns its dual cells: (D-1)-dim.
func relativeDim(nDims, dim int8) int8 { return nDims - 1 - dim }

// primalDims reconstructs the per-cell dimension slice boundary's Matrix
// API doesn't expose in bulk, for simplex.Build's *matrix.View argument.
func primalDims(m *matrix.Matrix) []int8 {
	dims := make([]int8, m.NColumns())
	for c := range dims {
		dims[c] = m.Dim(c)
	}

	return dims
}
