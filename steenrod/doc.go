// Package steenrod computes the Sq^k barcode of a filtered cell complex's
// cohomology in a chosen degree: first the representative of Sq^k applied
// to each degree-d cohomology class (square.go), then the death of each
// resulting degree-(d+k) class via a mixed reduction that couples
// cohomology and Steenrod columns ordered by pivot (death.go).
//
// The reference algorithm this package is grounded on (steenrod.hpp) is
// itself unfinished in its death-computation routine — mismatched braces,
// undefined variables, dead commented-out branches. This package instead
// implements the clean algebraic description of both stages directly,
// resolving every ambiguity the reference left open.
package steenrod
