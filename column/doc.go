// Package column implements the mod-2 sparse column algebra that every
// other package in this module builds on: an ordered set of cell indices
// representing a chain over F₂, with symmetric-difference addition.
//
// Two interchangeable representations are provided behind the Column
// interface:
//
//   - SortedColumn — a strictly increasing []int, the default; cheap for
//     the small, mostly-low-degree columns produced by simplicial/cubical
//     boundary matrices.
//   - BitTreeColumn — a 64-ary bit-tree bitset with O(popcount) max/insert,
//     useful for pivot-heavy workloads where columns grow dense.
//
// Both satisfy Column, so the reducer, persistence extractor, and Steenrod
// engine never depend on which representation backs a given matrix.
package column
