// Package persistence extracts a barcode — birth/death pairs plus
// persistent representatives — from a reduced boundary matrix and its
// accompanying triangular matrix.
//
// A single Bars type replaces the teacher-language inheritance chain
// ViewInfiniteBars -> ViewFiniteBars -> Bars (sorted_bars.hpp): every bar
// carries a birth, a death (-1 meaning infinite), and a representative
// column, with infinite bars simply leaving death at -1 and the
// representative as whatever the triangular matrix already holds.
package persistence
