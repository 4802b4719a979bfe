// SPDX-License-Identifier: MIT
package steenroder

import (
	"testing"

	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
	"github.com/katalvlaran/steenroder/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle: 3 vertices (0,1,2), 3 edges (3=ab,4=bc,5=ac), 1 triangle
// (6=abc) — the same minimal complex used across the other packages'
// fixtures.
func buildTriangle() *matrix.Matrix {
	m := matrix.New(7)
	m.Append(column.NewSortedColumn(nil), 0)
	m.Append(column.NewSortedColumn(nil), 0)
	m.Append(column.NewSortedColumn(nil), 0)
	m.Append(column.NewSortedColumn([]int{0, 1}), 1)
	m.Append(column.NewSortedColumn([]int{1, 2}), 1)
	m.Append(column.NewSortedColumn([]int{0, 2}), 1)
	m.Append(column.NewSortedColumn([]int{3, 4, 5}), 2)

	return m
}

func TestCompute_ShapeAndBarSanity(t *testing.T) {
	result, err := Compute(buildTriangle(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 7, result.NCells)
	assert.Equal(t, int8(3), result.NDimensions)
	require.NotNil(t, result.Cohomology)
	require.NotNil(t, result.SteenrodBars)

	for i := 0; i < result.Cohomology.NBars(); i++ {
		birth := result.Cohomology.Birth(i)
		assert.True(t, birth >= 0 && birth < result.NCells)
		if !result.Cohomology.Infinite(i) {
			death := result.Cohomology.Death(i)
			assert.True(t, death >= 0 && death < result.NCells)
			assert.NotEqual(t, birth, death)
		}
	}

	assert.Equal(t, relativeDim(result.NDimensions, 1+1), result.SteenrodBars.Dim())
	for i := 0; i < result.SteenrodBars.NBars(); i++ {
		birth := result.SteenrodBars.Birth(i)
		assert.True(t, birth >= 0 && birth < result.NCells)
		if !result.SteenrodBars.Infinite(i) {
			death := result.SteenrodBars.Death(i)
			assert.True(t, death >= 0 && death < result.NCells)
		}
	}
}

func TestCompute_OutOfRangeDimensionYieldsEmptySteenrodBarsNotError(t *testing.T) {
	result, err := Compute(buildTriangle(), 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SteenrodBars.NBars())
}

func TestCompute_NegativeDYieldsEmptySteenrodBarsNotError(t *testing.T) {
	result, err := Compute(buildTriangle(), -1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SteenrodBars.NBars())
}

func TestCompute_InvalidBoundaryMatrixErrors(t *testing.T) {
	m := matrix.New(2)
	m.Append(column.NewSortedColumn([]int{1}), 0) // entry >= own column index
	m.Append(column.NewSortedColumn(nil), 0)

	_, err := Compute(m, 0, 0)
	assert.Error(t, err)
}

func TestCompute_SteenrodBarsShareDualIndexSpaceWithCohomology(t *testing.T) {
	// Every Steenrod bar's birth must also appear as a degree-d cohomology
	// bar's birth (inherited directly, per the facade's wiring), and every
	// Steenrod representative entry stays within [0, NCells).
	result, err := Compute(buildTriangle(), 1, 1)
	require.NoError(t, err)

	relD := relativeDim(result.NDimensions, 1)
	cohomBirths := make(map[int]bool)
	for i := 0; i < result.Cohomology.NBars(); i++ {
		if result.Cohomology.Dim(i) == relD {
			cohomBirths[result.Cohomology.Birth(i)] = true
		}
	}

	for i := 0; i < result.SteenrodBars.NBars(); i++ {
		assert.True(t, cohomBirths[result.SteenrodBars.Birth(i)])
		for _, e := range result.SteenrodBars.Representative(i).Elements() {
			assert.True(t, e >= 0 && e < result.NCells)
		}
	}
}

func TestRelativeDim_IsInvolutionLikeDualize(t *testing.T) {
	assert.Equal(t, int8(2), relativeDim(3, 0))
	assert.Equal(t, int8(0), relativeDim(3, 2))
	assert.Equal(t, int8(0), relativeDim(3, relativeDim(3, 0)))
}

// buildCircle returns the boundary matrix of a 4-cycle: 4 vertices
// (0,1,2,3) followed by 4 edges closing the loop (01,12,23,30) — a minimal
// complex with a single non-trivial 1-cycle and no 2-cells to kill it.
func buildCircle() *matrix.Matrix {
	m := matrix.New(8)
	for i := 0; i < 4; i++ {
		m.Append(column.NewSortedColumn(nil), 0)
	}
	m.Append(column.NewSortedColumn([]int{0, 1}), 1)
	m.Append(column.NewSortedColumn([]int{1, 2}), 1)
	m.Append(column.NewSortedColumn([]int{2, 3}), 1)
	m.Append(column.NewSortedColumn([]int{0, 3}), 1)

	return m
}

// buildTwoTriangles returns two disjoint copies of buildTriangle's complex,
// the second shifted by 7 cells — S6 of spec.md §8, which this
// implementation's literal barcode reproduces as two independent copies of
// S1's own output (see TestCompute_TriangleExactBarcode), since the reducer
// treats each connected component's cells independently.
func buildTwoTriangles() *matrix.Matrix {
	m := matrix.New(14)
	for _, t := range [2]int{0, 7} {
		m.Append(column.NewSortedColumn(nil), 0)
		m.Append(column.NewSortedColumn(nil), 0)
		m.Append(column.NewSortedColumn(nil), 0)
		m.Append(column.NewSortedColumn([]int{t + 0, t + 1}), 1)
		m.Append(column.NewSortedColumn([]int{t + 1, t + 2}), 1)
		m.Append(column.NewSortedColumn([]int{t + 0, t + 2}), 1)
		m.Append(column.NewSortedColumn([]int{t + 3, t + 4, t + 5}), 2)
	}

	return m
}

// cohomBar is a (dim, birth, death) triple for asserting an exact barcode,
// death == -1 meaning infinite.
type cohomBar struct {
	dim   int8
	birth int
	death int
}

func collectCohomBars(b *persistence.Bars) []cohomBar {
	out := make([]cohomBar, b.NBars())
	for i := range out {
		out[i] = cohomBar{dim: b.Dim(i), birth: b.Birth(i), death: b.Death(i)}
	}

	return out
}

// TestCompute_TriangleExactBarcode pins S1 of spec.md §8 (the filled
// triangle) to its literal output: reduce.Twist's band loop runs
// dim in [0, NDimensions-2] (reduce/reduce.go, mirroring the original
// TwistReduction's identical "for(dim = 0; dim < n_dimensions - 1; ++dim)"
// in reduction.hpp), so the top dual-dimension band — here the dual image
// of the three primal vertices — is never folded into. Its rows are
// therefore never claimed by any pivot owner, which is why birth 3 is
// reused by two different death columns below instead of each birth
// appearing at most once (see DESIGN.md, "Known limitation: Twist's
// unprocessed top band").
func TestCompute_TriangleExactBarcode(t *testing.T) {
	result, err := Compute(buildTriangle(), 1, 1)
	require.NoError(t, err)

	want := []cohomBar{
		{dim: 0, birth: 0, death: 1},
		{dim: 1, birth: 2, death: 4},
		{dim: 1, birth: 3, death: 5},
		{dim: 1, birth: 3, death: 6},
	}
	assert.Equal(t, want, collectCohomBars(result.Cohomology))
	assert.Equal(t, 0, result.SteenrodBars.NBars())
}

// TestCompute_CircleExactBarcode pins S2 of spec.md §8 (the 4-cycle) to its
// literal output. As in the triangle case, the top dual-dimension band
// (dual image of the 4 primal vertices) is skipped by reduce.Twist, so
// birth 3 is reused by two death columns (6 and 7, both in the skipped
// band, keep pivot 3).
func TestCompute_CircleExactBarcode(t *testing.T) {
	result, err := Compute(buildCircle(), 0, 1)
	require.NoError(t, err)

	want := []cohomBar{
		{dim: 0, birth: 0, death: -1},
		{dim: 0, birth: 1, death: 4},
		{dim: 0, birth: 2, death: 5},
		{dim: 0, birth: 3, death: 6},
		{dim: 0, birth: 3, death: 7},
	}
	assert.Equal(t, want, collectCohomBars(result.Cohomology))
	assert.Equal(t, 0, result.SteenrodBars.NBars())
}

// TestCompute_TwoDisjointTrianglesExactBarcode pins S6 of spec.md §8: the
// barcode of two disjoint copies of S1's complex is exactly two disjoint
// copies of S1's own barcode (cell indices in the second copy shifted by
// 7), since nothing couples the two components during reduction.
func TestCompute_TwoDisjointTrianglesExactBarcode(t *testing.T) {
	result, err := Compute(buildTwoTriangles(), 1, 1)
	require.NoError(t, err)

	want := []cohomBar{
		{dim: 0, birth: 0, death: 1},
		{dim: 1, birth: 2, death: 4},
		{dim: 1, birth: 3, death: 5},
		{dim: 1, birth: 3, death: 6},
		{dim: 0, birth: 7, death: 8},
		{dim: 1, birth: 9, death: 11},
		{dim: 1, birth: 10, death: 12},
		{dim: 1, birth: 10, death: 13},
	}
	assert.Equal(t, want, collectCohomBars(result.Cohomology))
	assert.Equal(t, 0, result.SteenrodBars.NBars())
}

// TestCompute_TwistTopBandSkip_ProducesDuplicateBirths documents, rather
// than hides, the known limitation shared by both exact-barcode tests
// above: with reduce.Twist's top dual-dimension band left unprocessed,
// spec.md §8 invariant 4 (pivot uniqueness after reduction) does not hold
// in general. This is not a regression to chase down in this package —
// it is the literal behavior of reduce.Twist, faithfully carried over from
// the original TwistReduction (reduction.hpp), and is recorded precisely
// in DESIGN.md rather than asserted away by a passing "uniqueness" test.
func TestCompute_TwistTopBandSkip_ProducesDuplicateBirths(t *testing.T) {
	result, err := Compute(buildTriangle(), 1, 1)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i := 0; i < result.Cohomology.NBars(); i++ {
		if !result.Cohomology.Infinite(i) {
			seen[result.Cohomology.Birth(i)]++
		}
	}

	dup := false
	for _, count := range seen {
		if count > 1 {
			dup = true
		}
	}
	assert.True(t, dup, "expected the known top-band-skip birth collision to reproduce on the triangle fixture")
}

// TestCompute_IdempotentOnEmptyInput covers spec.md §8 invariant 8: an
// empty boundary matrix produces an empty cohomology barcode and an empty,
// dimension-labeled (but otherwise inert) Steenrod barcode, not an error.
func TestCompute_IdempotentOnEmptyInput(t *testing.T) {
	result, err := Compute(matrix.New(0), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, result.NCells)
	assert.Equal(t, 0, result.Cohomology.NBars())
	assert.Equal(t, 0, result.SteenrodBars.NBars())
}

// TestCompute_SqkDegreeCorrectness covers spec.md §8 invariant 7: the
// Steenrod barcode for a (d, k) query is always labeled with dual-dimension
// relativeDim(NDimensions, d+k), regardless of which scenario produced it.
func TestCompute_SqkDegreeCorrectness(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    *matrix.Matrix
		d, k int8
	}{
		{"triangle", buildTriangle(), 1, 1},
		{"circle", buildCircle(), 0, 1},
		{"twoTriangles", buildTwoTriangles(), 1, 1},
	} {
		result, err := Compute(tc.m, tc.d, tc.k)
		require.NoError(t, err, tc.name)
		assert.Equal(t, relativeDim(result.NDimensions, tc.d+tc.k), result.SteenrodBars.Dim(), tc.name)
	}
}
