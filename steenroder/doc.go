// SPDX-License-Identifier: MIT

// Package steenroder wires the column, matrix, dualize, reduce,
// persistence, simplex, and steenrod packages into the single end-to-end
// operation of spec.md §4.7: given a boundary matrix and a (d, k) query,
// compute the ordinary persistent cohomology barcode and the persistent
// barcode of Sq^k acting on degree-d cohomology.
//
// Compute mirrors barcodes.cpp's compute_steenrod_barcodes, minus its file
// I/O (which lives in ioformat and cmd/steenroder):
//
//  1. dualize.Dualize to the relative-cohomology boundary matrix.
//  2. reduce.Twist + persistence.Extract on the dual matrix.
//  3. simplex.Build on the primal boundary matrix, for dimensions d, d+k
//     (skipped when d or d+k is out of range).
//  4. steenrod.SquareRepresentative for every degree-d cohomology
//     representative.
//  5. steenrod package's death coupling against the degree-(d+k)
//     cohomology bars.
package steenroder
