// SPDX-License-Identifier: MIT
package column

// BitTreeColumn is the optional alternative representation of spec §4.1: a
// bitset indexed by a 64-ary tree, where each node's bits mark which of its
// 64 children subtrees are non-empty. It supports near-O(1) insert/remove
// and O(popcount-along-the-path) Max via a de Bruijn rightmost-bit scan,
// grounded in the original bit_tree_column.hpp. Useful for pivot-heavy
// workloads where columns grow dense enough that []int scanning costs more
// than bit-twiddling.
//
// BitTreeColumn satisfies Column, so it is interchangeable with
// SortedColumn anywhere a Column is expected.
type BitTreeColumn struct {
	offset int      // data[i+offset] is the i-th block of the bottom (data) level
	data   []uint64 // tree levels packed contiguously, root at data[0]
	count  int      // number of set bits, maintained incrementally

	cached      []int // lazily computed sorted entries
	cachedValid bool
}

const (
	blockBits  = 64
	blockShift = 6
)

// debruijnTable maps the top 6 bits of (x & -x) * magic to the index of
// the rightmost set bit of a 64-bit word. Values per the de Bruijn
// sequence table in bit_tree_column.hpp / the public "bithacks" reference.
var debruijnTable = [64]uint{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

const debruijnMagic = 0x07EDD5E59A4E28C2

// rightmostSetBit returns the 0-based position (0 = most significant bit)
// of the lowest set bit of value, which must be non-zero.
func rightmostSetBit(value uint64) int {
	idx := ((value & -value) * debruijnMagic) >> 58

	return blockBits - 1 - int(debruijnTable[idx])
}

// NewBitTreeColumn allocates an empty BitTreeColumn capable of holding cell
// indices in [0, capacity).
func NewBitTreeColumn(capacity int) *BitTreeColumn {
	c := &BitTreeColumn{}
	c.init(capacity)

	return c
}

func (c *BitTreeColumn) init(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	bottomBlocks := (capacity + blockBits - 1) / blockBits
	upperBlocks := 1
	n := 1
	for n*blockBits < bottomBlocks {
		n *= blockBits
		upperBlocks += n
	}
	c.offset = upperBlocks
	c.data = make([]uint64, upperBlocks+bottomBlocks)
	c.cachedValid = false
}

// toggleIndex flips membership of entry and propagates the change up the
// tree, exactly as add_index in bit_tree_column.hpp (an insert and a
// removal are the same bit-flip operation since entries are never
// duplicated).
func (c *BitTreeColumn) toggleIndex(entry int) {
	const one = uint64(1)
	indexInLevel := entry >> blockShift
	address := indexInLevel + c.offset
	indexInBlock := entry & (blockBits - 1)
	mask := one << uint(blockBits-indexInBlock-1)

	wasSet := c.data[address]&mask != 0
	c.data[address] ^= mask
	if wasSet {
		c.count--
	} else {
		c.count++
	}

	for address != 0 && c.data[address]&^mask == 0 {
		indexInBlock = indexInLevel & (blockBits - 1)
		indexInLevel >>= blockShift
		address--
		address >>= blockShift
		mask = one << uint(blockBits-indexInBlock-1)
		c.data[address] ^= mask
	}
}

func (c *BitTreeColumn) invalidate() { c.cachedValid = false }

// Max returns the pivot, or -1 if empty. Complexity: O(tree depth).
func (c *BitTreeColumn) Max() int {
	if c.data[0] == 0 {
		return -1
	}
	address, index := 0, 0
	for {
		index = rightmostSetBit(c.data[address])
		next := (address << blockShift) + index + 1
		if next >= len(c.data) {
			break
		}
		address = next
	}

	return ((address - c.offset) << blockShift) + index
}

// PopMax removes the pivot. No-op if empty. Complexity: O(tree depth).
func (c *BitTreeColumn) PopMax() {
	mx := c.Max()
	if mx == -1 {
		return
	}
	c.toggleIndex(mx)
	c.invalidate()
}

// Clear empties the column. Complexity: O(popcount * tree depth).
func (c *BitTreeColumn) Clear() {
	for mx := c.Max(); mx != -1; mx = c.Max() {
		c.toggleIndex(mx)
	}
	c.count = 0
	c.invalidate()
}

// Len returns the number of set entries. Complexity: O(1).
func (c *BitTreeColumn) Len() int { return c.count }

// Empty reports whether the column has no entries. Complexity: O(1).
func (c *BitTreeColumn) Empty() bool { return c.data[0] == 0 }

// Elements returns the entries in increasing order, computed lazily and
// cached until the next mutation.
func (c *BitTreeColumn) Elements() []int {
	if c.cachedValid {
		return c.cached
	}

	out := make([]int, 0, c.count)
	for mx := c.Max(); mx != -1; mx = c.Max() {
		out = append(out, mx)
		c.toggleIndex(mx)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	for _, v := range out {
		c.toggleIndex(v)
	}
	c.cached = out
	c.cachedValid = true

	return out
}

// Materialize overwrites the column's contents with sorted (which MUST be
// strictly increasing). Complexity: O(|sorted| * tree depth).
func (c *BitTreeColumn) Materialize(sorted []int) {
	c.Clear()
	for _, v := range sorted {
		c.toggleIndex(v)
	}
	c.invalidate()
}

// Clone returns an independent copy with the same capacity and entries.
func (c *BitTreeColumn) Clone() Column {
	cp := &BitTreeColumn{}
	cp.init(((len(c.data) - c.offset) << blockShift))
	cp.Materialize(c.Elements())

	return cp
}
