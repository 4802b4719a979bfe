// SPDX-License-Identifier: MIT
package column

// AddInto overwrites dst with dst ⊕ src (symmetric difference), the mod-2
// addition of two chains. *scratch is reused across calls and grown to fit
// |dst|+|src| when needed — buffer reuse is mandatory for performance in
// the reduction hot loop (spec §4.1).
//
// Edge cases: AddInto(dst, dst, ...) empties dst; AddInto(dst, empty, ...)
// is a no-op; the result is always sorted with no duplicates.
// Complexity: O(|dst|+|src|).
func AddInto(dst Column, src Column, scratch *[]int) {
	a, b := dst.Elements(), src.Elements()
	buf := growScratch(scratch, len(a)+len(b))
	out := symmetricDifference(a, b, buf)
	recycle(dst, out, scratch)
}

// Union overwrites dst with dst ∪ src. Used only for vertex-support
// accumulation (§4.6.1) and Steenrod-representative accumulation (§4.6.2),
// never in the hot reduction path.
// Complexity: O(|dst|+|src|).
func Union(dst Column, src Column, scratch *[]int) {
	a, b := dst.Elements(), src.Elements()
	buf := growScratch(scratch, len(a)+len(b))
	out := unionSorted(a, b, buf)
	recycle(dst, out, scratch)
}

// Difference overwrites dst with dst − src.
// Complexity: O(|dst|+|src|).
func Difference(dst Column, src Column, scratch *[]int) {
	a, b := dst.Elements(), src.Elements()
	buf := growScratch(scratch, len(a))
	out := differenceSorted(a, b, buf)
	recycle(dst, out, scratch)
}

// recycle installs out as dst's new contents and hands dst's previous
// backing storage back to *scratch, so the next call reuses it instead of
// allocating — the Go analogue of VectorColumn::operator+= swapping a temp
// buffer into place (spec §4.1: "buffer reuse is mandatory for
// performance").
func recycle(dst Column, out []int, scratch *[]int) {
	previous := dst.Elements()
	dst.Materialize(out)
	*scratch = previous[:0]
}

// growScratch returns *scratch resized (not merely capacity-grown) to n
// elements, reusing the backing array when it already has enough capacity.
func growScratch(scratch *[]int, n int) []int {
	if cap(*scratch) < n {
		*scratch = make([]int, n)
	}

	return (*scratch)[:n]
}

// symmetricDifference writes the symmetric difference of sorted slices a
// and b into out (which must have length >= len(a)+len(b)) and returns the
// written prefix. Mirrors std::set_symmetric_difference as used by
// VectorColumn::operator+=.
func symmetricDifference(a, b, out []int) []int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out[n] = a[i]
			i++
			n++
		case b[j] < a[i]:
			out[n] = b[j]
			j++
			n++
		default: // equal entries cancel mod 2
			i++
			j++
		}
	}
	n += copy(out[n:], a[i:])
	n += copy(out[n:], b[j:])

	return out[:n]
}

// unionSorted writes the set union of sorted slices a and b into out and
// returns the written prefix.
func unionSorted(a, b, out []int) []int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out[n] = a[i]
			i++
		case b[j] < a[i]:
			out[n] = b[j]
			j++
		default:
			out[n] = a[i]
			i++
			j++
		}
		n++
	}
	n += copy(out[n:], a[i:])
	n += copy(out[n:], b[j:])

	return out[:n]
}

// differenceSorted writes a − b (entries of a not present in b) into out
// and returns the written prefix.
func differenceSorted(a, b, out []int) []int {
	i, j, n := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out[n] = a[i]
			i++
			n++
		case b[j] < a[i]:
			j++
		default:
			i++
			j++
		}
	}
	n += copy(out[n:], a[i:])

	return out[:n]
}
