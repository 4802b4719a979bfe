// SPDX-License-Identifier: MIT
package persistence

import (
	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
)

// Bars is a persistent barcode: one entry per bar, each with a birth cell,
// a death cell (-1 meaning infinite), and a persistent representative
// cycle. Bars[i] groups finite and infinite bars uniformly instead of the
// teacher-language ViewInfiniteBars/ViewFiniteBars/Bars inheritance chain —
// an infinite bar is simply one whose Death is -1.
type Bars struct {
	representative *matrix.Matrix // Get(i) is bar i's representative column
	birth          []int
	death          []int
	view           *matrix.View // bars grouped by the dimension of their birth cell
}

// NBars returns the number of bars.
func (b *Bars) NBars() int { return len(b.birth) }

// Birth returns bar i's birth cell index.
func (b *Bars) Birth(i int) int { return b.birth[i] }

// Death returns bar i's death cell index, or -1 if the bar is infinite.
func (b *Bars) Death(i int) int { return b.death[i] }

// Infinite reports whether bar i never dies.
func (b *Bars) Infinite(i int) bool { return b.death[i] == -1 }

// Representative returns bar i's persistent representative cycle.
func (b *Bars) Representative(i int) column.Column { return b.representative.Get(i) }

// Dim returns bar i's dimension (that of its birth cell).
func (b *Bars) Dim(i int) int8 { return b.representative.Dim(i) }

// View returns the bars grouped by dimension, ascending.
func (b *Bars) View() *matrix.View { return b.view }

// Dualize remaps birth/death labels from dual (anti-transpose) cell-index
// space back to the original complex's indexing: a finite bar's (birth,
// death) become (nCells-1-death, nCells-1-birth) — cohomology reverses
// which endpoint is "born" and which "dies" relative to the dual indexing —
// and an infinite bar's birth becomes nCells-1-birth, death staying -1.
// Dimensions and representatives are left untouched, so Dim still reports
// the relative dimension the bars were extracted with. Mutates in place,
// mirroring ViewFiniteBars::dualize/ViewInfiniteBars::dualize.
func (b *Bars) Dualize(nCells int) {
	for i := range b.birth {
		if b.death[i] == -1 {
			b.birth[i] = nCells - 1 - b.birth[i]
			continue
		}
		oldBirth, oldDeath := b.birth[i], b.death[i]
		b.birth[i] = nCells - 1 - oldDeath
		b.death[i] = nCells - 1 - oldBirth
	}
}
