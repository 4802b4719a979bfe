// Package simplex computes, for every cell of two chosen dimensions d and
// d+k, its vertex support: the union of vertex indices spanned by the
// cell, obtained by recursively unioning the supports of its facets down
// to dimension-1 cells (whose own boundary already is their vertex pair).
//
// Grounded in simplex_matrix.hpp's build_simplex/init_simplices/is_in, but
// translated from unbounded recursion (one stack frame per dimension of
// the filtration) into an explicit iterative post-order walk with
// memoization, since a Go goroutine's stack has no portable guarantee of
// growing to match an arbitrarily deep filtration.
package simplex
