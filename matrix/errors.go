// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is, not string comparison.
package matrix

import "errors"

var (
	// ErrNonMonotoneBoundary is returned by Validate when some column c
	// contains an entry >= c, violating the "consistent filtration"
	// invariant (spec.md §3, §7: cell index must strictly precede its
	// coboundary/boundary).
	ErrNonMonotoneBoundary = errors.New("matrix: boundary entry not strictly less than its column index")

	// ErrIndexOutOfRange is returned by Erase when a column index falls
	// outside [0, NColumns()). Get/Set/Dim/SetDim/Swap instead panic on a
	// bad index, since those are always called with internally-derived
	// indices (the reducer/dualizer never index outside [0, NColumns()));
	// Erase is the one column-removing call whose index can originate from
	// outside the package, so it reports rather than panics.
	ErrIndexOutOfRange = errors.New("matrix: column index out of range")

	// ErrDimensionOutOfRange is returned by View.BandChecked when a
	// requested dimension is negative or >= NDimensions() — a genuinely
	// out-of-range dimension, not the "no cells at this dimension but it's
	// within range" case Band/Count handle silently.
	ErrDimensionOutOfRange = errors.New("matrix: dimension out of range")
)
