// SPDX-License-Identifier: MIT
package steenrod

import (
	"sort"

	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/persistence"
)

// origin tags which store a mixedColumn's index refers into — the "sum
// type, not inheritance" rendering of the cohomology/Steenrod column union.
type origin int

const (
	originCohomology origin = iota
	originSteenrod
)

// mixedColumn identifies one column in the combined cohomology ∪ Steenrod
// row-ownership space.
type mixedColumn struct {
	from origin
	idx  int
}

// mixedStore dispatches pivot/read/fold access for a mixedColumn through
// the correct underlying store, so the death reducer never branches on
// concrete type outside this one place.
type mixedStore struct {
	cohom      *persistence.Bars
	steen      []column.Column // mutable working copies, one per Steenrod bar
	steenBirth []int
}

func (s *mixedStore) read(mc mixedColumn) column.Column {
	if mc.from == originCohomology {
		return s.cohom.Representative(mc.idx)
	}

	return s.steen[mc.idx]
}

func (s *mixedStore) birth(mc mixedColumn) int {
	if mc.from == originCohomology {
		return s.cohom.Birth(mc.idx)
	}

	return s.steenBirth[mc.idx]
}

func (s *mixedStore) pivot(mc mixedColumn) int { return s.read(mc).Max() }

func (s *mixedStore) addFrom(dst column.Column, src mixedColumn, scratch *[]int) {
	column.AddInto(dst, s.read(src), scratch)
}

// deathOutcome is the terminal state of a single Steenrod column's mixed
// reduction, per the ALIVE -> {EMPTY, EMPTY_AT_BIRTH, IRREDUCIBLE} state
// machine.
type deathOutcome int

const (
	outcomeIrreducible  deathOutcome = iota // pivot survives unmatched: immortal
	outcomeEmpty                            // column emptied, death > birth
	outcomeEmptyAtBirth                     // column emptied folding in nothing past its own birth: born dead
)

// reduceOneSteenrodColumn folds owner[pivot(t)] into t until t empties or
// its surviving pivot has no owner, claiming ownership of that pivot for
// selfIdx in the latter case. Returns the outcome and, for a finite
// outcome, the death cell index.
func reduceOneSteenrodColumn(t column.Column, birth, selfIdx int, owner map[int]mixedColumn, store *mixedStore, scratch *[]int) (deathOutcome, int) {
	foldedMax := -1
	for {
		p := t.Max()
		if p == -1 {
			if foldedMax <= birth {
				return outcomeEmptyAtBirth, birth
			}

			return outcomeEmpty, foldedMax
		}

		src, ok := owner[p]
		if !ok {
			owner[p] = mixedColumn{from: originSteenrod, idx: selfIdx}

			return outcomeIrreducible, -1
		}

		store.addFrom(t, src, scratch)
		if b := store.birth(src); b > foldedMax {
			foldedMax = b
		}
	}
}

// ComputeDeaths resolves the death of every bar in steenrodBars against the
// degree-(d+k) finite cohomology bars in cohomFiniteDPK, mutating
// steenrodBars in place.
//
// Row ownership is seeded from cohomFiniteDPK (each finite bar's pivot row
// — the largest cell index in its representative — is claimed by that
// bar), then Steenrod columns are folded in ascending birth order: within a
// single column's reduction, the owner of its current pivot is always the
// one folded in next (there is only ever one, since a pivot has at most
// one owner at a time), which is the standard left-to-right sparse
// reduction rule.
func ComputeDeaths(cohomFiniteDPK *persistence.Bars, steenrodBars *Bars) error {
	n := steenrodBars.NBars()
	store := &mixedStore{
		cohom:      cohomFiniteDPK,
		steen:      make([]column.Column, n),
		steenBirth: make([]int, n),
	}
	order := make([]int, n)
	for i := 0; i < n; i++ {
		store.steen[i] = steenrodBars.Representative(i).Clone()
		store.steenBirth[i] = steenrodBars.Birth(i)
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return store.steenBirth[order[a]] < store.steenBirth[order[b]]
	})

	owner := make(map[int]mixedColumn, cohomFiniteDPK.NBars())
	for c := 0; c < cohomFiniteDPK.NBars(); c++ {
		if cohomFiniteDPK.Infinite(c) || cohomFiniteDPK.Dim(c) != steenrodBars.Dim() {
			continue
		}
		p := cohomFiniteDPK.Representative(c).Max()
		if p == -1 {
			continue
		}
		owner[p] = mixedColumn{from: originCohomology, idx: c}
	}

	var scratch []int
	for _, i := range order {
		outcome, death := reduceOneSteenrodColumn(store.steen[i], store.steenBirth[i], i, owner, store, &scratch)
		switch outcome {
		case outcomeIrreducible:
			steenrodBars.death[i] = -1
		case outcomeEmptyAtBirth:
			steenrodBars.death[i] = death
			steenrodBars.representative.Set(i, column.NewSortedColumn(nil))
		case outcomeEmpty:
			steenrodBars.death[i] = death
		}
	}

	return nil
}
