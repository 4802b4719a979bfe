// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"github.com/katalvlaran/steenroder/column"
)

// Matrix is the boundary matrix of a filtered cell complex: column c holds
// the (sorted, mod-2) indices of c's facets, and dims[c] is c's dimension.
// Cell index doubles as filtration order throughout this module.
type Matrix struct {
	columns []column.Column
	dims    []int8
}

// New allocates an empty Matrix with capacity for n columns pre-reserved
// (no columns are created yet; use Append to populate).
func New(capacityHint int) *Matrix {
	return &Matrix{
		columns: make([]column.Column, 0, capacityHint),
		dims:    make([]int8, 0, capacityHint),
	}
}

// NewFromColumns wraps pre-built columns/dims directly (both retained by
// reference). len(columns) MUST equal len(dims).
func NewFromColumns(columns []column.Column, dims []int8) *Matrix {
	return &Matrix{columns: columns, dims: dims}
}

// NColumns returns the number of cells (columns) in the matrix.
func (m *Matrix) NColumns() int { return len(m.columns) }

// Get returns the column for cell c. Panics if c is out of range — an
// internal-invariant violation, not a user-triggered condition (the
// reducer/dualizer always index within [0, NColumns())).
func (m *Matrix) Get(c int) column.Column { return m.columns[c] }

// Set overwrites the column for cell c.
func (m *Matrix) Set(c int, col column.Column) { m.columns[c] = col }

// Dim returns the dimension of cell c.
func (m *Matrix) Dim(c int) int8 { return m.dims[c] }

// SetDim overwrites the dimension of cell c.
func (m *Matrix) SetDim(c int, d int8) { m.dims[c] = d }

// Append adds a new column at the end, returning its assigned cell index.
func (m *Matrix) Append(col column.Column, dim int8) int {
	m.columns = append(m.columns, col)
	m.dims = append(m.dims, dim)

	return len(m.columns) - 1
}

// Swap exchanges columns i and j (and their dimensions) in place.
func (m *Matrix) Swap(i, j int) {
	m.columns[i], m.columns[j] = m.columns[j], m.columns[i]
	m.dims[i], m.dims[j] = m.dims[j], m.dims[i]
}

// Erase removes cell i, shifting every later column/dimension down by one
// index (spec.md §4.2's erase(i)). Returns ErrIndexOutOfRange if i falls
// outside [0, NColumns()) instead of panicking, since erase is driven by
// caller-supplied indices (e.g. a CLI or file-format trim) rather than an
// internal invariant the rest of this package otherwise assumes holds.
func (m *Matrix) Erase(i int) error {
	if i < 0 || i >= len(m.columns) {
		return ErrIndexOutOfRange
	}

	m.columns = append(m.columns[:i], m.columns[i+1:]...)
	m.dims = append(m.dims[:i], m.dims[i+1:]...)

	return nil
}

// NDimensions returns one more than the maximum dimension present, i.e.
// the "D" of spec.md (the number of distinct dimensions, 0..D-1).
// Complexity: O(NColumns).
func (m *Matrix) NDimensions() int8 {
	var max int8 = -1
	for _, d := range m.dims {
		if d > max {
			max = d
		}
	}

	return max + 1
}

// Validate checks the "consistent filtration" invariant: every entry of
// column c is strictly less than c. Returns ErrNonMonotoneBoundary wrapped
// with the offending cell index on the first violation found.
func (m *Matrix) Validate() error {
	for c, col := range m.columns {
		for _, row := range col.Elements() {
			if row >= c {
				return fmt.Errorf("matrix: cell %d row %d: %w", c, row, ErrNonMonotoneBoundary)
			}
		}
	}

	return nil
}

// Clone returns a deep copy: independent columns, independent dims slice.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{
		columns: make([]column.Column, len(m.columns)),
		dims:    append([]int8(nil), m.dims...),
	}
	for i, col := range m.columns {
		cp.columns[i] = col.Clone()
	}

	return cp
}
