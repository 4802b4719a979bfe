// Package reduce implements column-reduction to a triangular boundary
// matrix: Standard (no dimension requirement) and Twist (dimension-ordered,
// with the twist optimization of clearing matched pivot columns).
//
// Both return the accompanying triangular matrix — the accumulated record
// of which original columns were folded into which, seeded as the identity
// (column c starts as {c}) and built up via column.AddInto exactly as the
// reduced boundary matrix itself, mirroring ViewInfiniteBars/Bars's
// identity-seeded construction in sorted_bars.hpp. persistence.Extract
// reads birth/death off the reduced matrix and representatives off the
// triangular matrix.
package reduce
