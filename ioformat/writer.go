// SPDX-License-Identifier: MIT
package ioformat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/steenroder/matrix"
)

// BarSource is the minimal read surface WriteBarsASCII/WriteBarsBinary need
// from a barcode: persistence.Bars and steenrod.Bars both satisfy it, the
// latter via a constant dimOf closure (every Steenrod bar shares the same
// degree). Kept separate from a Dim method since steenrod.Bars.Dim takes no
// index argument.
type BarSource interface {
	NBars() int
	Birth(i int) int
	Death(i int) int
}

// WriteBarsASCII writes bars grouped by dimension (ascending), each group
// headed by "# dim D", a count line, then one "birth death" line per bar
// (death -1 meaning infinite) — spec.md §6's ASCII bars format.
func WriteBarsASCII(w io.Writer, bars BarSource, dimOf func(i int) int8) error {
	byDim := groupByDim(bars, dimOf)

	bw := bufio.NewWriter(w)
	for _, dim := range sortedDims(byDim) {
		idxs := byDim[dim]
		if _, err := fmt.Fprintf(bw, "# dim %d\n%d\n", dim, len(idxs)); err != nil {
			return err
		}
		for _, i := range idxs {
			if _, err := fmt.Fprintf(bw, "%d %d\n", bars.Birth(i), bars.Death(i)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteBarsBinary writes the little-endian int64 binary bars format of
// spec.md §6: [n_pairs][(dim, birth, death) x n_pairs], in bar index
// order (not grouped by dimension).
func WriteBarsBinary(w io.Writer, bars BarSource, dimOf func(i int) int8) error {
	bw := bufio.NewWriter(w)
	n := int64(bars.NBars())
	if err := binary.Write(bw, binary.LittleEndian, n); err != nil {
		return err
	}
	for i := 0; i < bars.NBars(); i++ {
		triple := [3]int64{int64(dimOf(i)), int64(bars.Birth(i)), int64(bars.Death(i))}
		if err := binary.Write(bw, binary.LittleEndian, triple); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func groupByDim(bars BarSource, dimOf func(i int) int8) map[int8][]int {
	byDim := make(map[int8][]int)
	for i := 0; i < bars.NBars(); i++ {
		d := dimOf(i)
		byDim[d] = append(byDim[d], i)
	}

	return byDim
}

func sortedDims(byDim map[int8][]int) []int8 {
	dims := make([]int8, 0, len(byDim))
	for d := range byDim {
		dims = append(dims, d)
	}
	for i := 1; i < len(dims); i++ {
		for j := i; j > 0 && dims[j-1] > dims[j]; j-- {
			dims[j-1], dims[j] = dims[j], dims[j-1]
		}
	}

	return dims
}

// WriteMatrixASCII dumps m grouped by view's dimension bands, in the same
// "dim row...row" per-line format ReadMatrixASCII accepts — the optional
// diagnostic matrix dump of spec.md §6.
func WriteMatrixASCII(w io.Writer, m *matrix.Matrix, view *matrix.View) error {
	bw := bufio.NewWriter(w)
	for dim := int8(0); dim < view.NDimensions(); dim++ {
		if _, err := fmt.Fprintf(bw, "# dim %d\n", dim); err != nil {
			return err
		}
		for _, c := range view.Band(dim) {
			if _, err := fmt.Fprintf(bw, "%d", m.Dim(c)); err != nil {
				return err
			}
			for _, row := range m.Get(c).Elements() {
				if _, err := fmt.Fprintf(bw, " %d", row); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteMatrixBinary dumps m in the same little-endian int64 format
// ReadMatrixBinary accepts, column order ascending by cell index.
func WriteMatrixBinary(w io.Writer, m *matrix.Matrix) error {
	bw := bufio.NewWriter(w)
	n := int64(m.NColumns())
	if err := binary.Write(bw, binary.LittleEndian, n); err != nil {
		return err
	}
	for c := 0; c < m.NColumns(); c++ {
		if err := binary.Write(bw, binary.LittleEndian, int64(m.Dim(c))); err != nil {
			return err
		}
		rows := m.Get(c).Elements()
		if err := binary.Write(bw, binary.LittleEndian, int64(len(rows))); err != nil {
			return err
		}
		for _, row := range rows {
			if err := binary.Write(bw, binary.LittleEndian, int64(row)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
