// Package dualize builds the anti-transpose of a boundary matrix: the
// boundary matrix of the relative cohomology complex, from which persistent
// cohomology bars are extracted by standard/twist reduction exactly as
// persistent homology bars are extracted from the primal matrix.
//
// Grounded in boundary_matrix.hpp's dualize(): cell N-1-c of the dual
// matrix holds {N-1-r : r is a boundary entry of some c' with c in
// column(c')}... concretely, row r of the primal column c becomes, after
// reindexing, an entry of the dual column N-1-r. Dimension also flips:
// d*(N-1-c) = (D-1) - d(c).
package dualize
