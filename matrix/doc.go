// Package matrix stores a filtered complex's boundary matrix as a slice of
// column.Column values indexed by cell (simplex/cube) index, each paired
// with the cell's dimension, plus a View giving the per-dimension
// processing order the reducer and Steenrod engine need.
//
// Cell index IS filtration order: cell c is the c-th cell to enter the
// filtration, and every boundary entry of column c must be < c (spec.md
// §3's "consistent filtration" invariant, checked by Validate).
package matrix
