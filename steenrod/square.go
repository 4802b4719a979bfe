// SPDX-License-Identifier: MIT
package steenrod

import (
	"sort"

	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/simplex"
	"gonum.org/v1/gonum/stat/combin"
)

// SquareRepresentative computes the Sq^k image of a single degree-d
// cohomology representative rep, returning the accumulated degree-(d+k)
// representative (possibly empty, meaning Sq^k vanishes on this class).
//
// rep's entries live in the dualized (anti-transpose) index space: for a
// cell c ∈ rep, its vertex support is looked up at the "true" primal cell
// c̃ = nCells-1-c, via support (which was built on the primal boundary
// matrix, never the dual one). Every unordered pair of rep's entries is
// tested for admissibility ("purity") following the Cartan-style
// interleaving test of the governing description; admissible pairs toggle
// the dual index of the witnessing degree-(d+k) cell into the result.
func SquareRepresentative(rep column.Column, support *simplex.Support, d, k int8, nCells int) column.Column {
	acc := column.NewSortedColumn(nil)
	elems := rep.Elements()
	if len(elems) < 2 {
		return acc
	}

	var scratch, single []int
	dpk := d + k

	for _, pair := range combin.Combinations(len(elems), 2) {
		ca, cb := elems[pair[0]], elems[pair[1]]
		trueA, trueB := nCells-1-ca, nCells-1-cb

		aCol := support.Get(trueA)
		bCol := support.Get(trueB)
		if aCol == nil || bCol == nil {
			continue
		}

		uCol := aCol.Clone()
		column.Union(uCol, bCol, &scratch)
		u := uCol.Elements()
		if len(u)-1-int(d) != int(k) {
			continue
		}

		sCell := support.IndexOf(0, dpk, uCol)
		if sCell == -1 {
			continue
		}

		abarCol := bCol.Clone()
		column.Difference(abarCol, aCol, &scratch) // ā = b \ a
		bbarCol := aCol.Clone()
		column.Difference(bbarCol, bCol, &scratch) // b̄ = a \ b
		abar, bbar := abarCol.Elements(), bbarCol.Elements()

		if len(abar) == 0 || len(abar) != len(bbar) {
			continue
		}

		vCol := abarCol.Clone()
		column.Union(vCol, bbarCol, &scratch)
		v := vCol.Elements()

		if !isPure(abar, bbar, u, v) {
			continue
		}

		single = append(single[:0], nCells-1-sCell)
		column.AddInto(acc, column.NewSortedColumn(single), &scratch)
	}

	return acc
}

// isPure implements the admissibility ("purity") test: pos_a over ā and
// pos_b over b̄ must each be constant across their own set, and the two
// constants must differ.
func isPure(abar, bbar, u, v []int) bool {
	pa0 := posOf(abar[0], u, v)
	pb0 := posOf(bbar[0], u, v)
	if pa0 == pb0 {
		return false
	}
	for _, x := range abar[1:] {
		if posOf(x, u, v) != pa0 {
			return false
		}
	}
	for _, x := range bbar[1:] {
		if posOf(x, u, v) != pb0 {
			return false
		}
	}

	return true
}

// posOf computes (rank(x, u) + rank(x, v)) mod 2, rank being x's 0-based
// position within the sorted slice (mirroring calculate_index's
// std::lower_bound-based rank computation).
func posOf(x int, u, v []int) int {
	ru := sort.SearchInts(u, x)
	rv := sort.SearchInts(v, x)

	return (ru + rv) % 2
}
