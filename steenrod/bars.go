// SPDX-License-Identifier: MIT
package steenrod

import (
	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
)

// Bars holds the Steenrod barcode produced for a single (d, k) query: one
// entry per non-vanishing Sq^k image, each with a birth cell inherited from
// its originating cohomology bar, a death cell (-1 meaning immortal), and
// the representative cycle as it stood at birth.
type Bars struct {
	representative *matrix.Matrix
	birth          []int
	death          []int
	dim            int8 // d+k, shared by every bar in this set
}

// NewBars allocates an empty Steenrod barcode for dimension dim (= d+k in
// the originating query).
func NewBars(dim int8) *Bars {
	return &Bars{representative: matrix.New(0), dim: dim}
}

// Add appends a new Steenrod bar with death still pending (-1).
func (b *Bars) Add(birth int, rep column.Column) {
	b.birth = append(b.birth, birth)
	b.death = append(b.death, -1)
	b.representative.Append(rep, b.dim)
}

// NBars returns the number of Steenrod bars.
func (b *Bars) NBars() int { return len(b.birth) }

// Birth returns bar i's birth cell index.
func (b *Bars) Birth(i int) int { return b.birth[i] }

// Death returns bar i's death cell index, or -1 if immortal.
func (b *Bars) Death(i int) int { return b.death[i] }

// Infinite reports whether bar i never dies.
func (b *Bars) Infinite(i int) bool { return b.death[i] == -1 }

// Representative returns bar i's representative cycle as computed at
// birth; callers should not rely on it still reflecting bar i's state
// after a born-dead classification, since ComputeDeaths clears it then.
func (b *Bars) Representative(i int) column.Column { return b.representative.Get(i) }

// Dim returns the fixed dimension (d+k) shared by every bar in this set.
func (b *Bars) Dim() int8 { return b.dim }

// Dualize remaps birth/death labels from dual (anti-transpose) cell-index
// space back to the original complex's indexing, identically to
// persistence.Bars.Dualize: a finite bar's (birth, death) become
// (nCells-1-death, nCells-1-birth), an infinite bar's birth becomes
// nCells-1-birth. Mutates in place.
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
