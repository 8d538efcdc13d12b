package gridworld

import "math/bits"

// DirtySet is the set of cells still containing dirt, stored as a bit mask
// over row-major cell indices (see World.Index).
//
// It is a value type: copying a DirtySet copies the whole set, so a caller's
// set is never affected by operations on a copy. Use World.NewDirtySet to
// build one from positions.
type DirtySet uint64

// Has reports whether the cell at row-major index idx is dirty.
// Complexity: O(1).
func (d DirtySet) Has(idx int) bool {
	return idx >= 0 && idx < MaxCells && d&(1<<uint(idx)) != 0
}

// With returns a copy of d with the cell at idx marked dirty.
func (d DirtySet) With(idx int) DirtySet {
	return d | 1<<uint(idx)
}

// Without returns a copy of d with the cell at idx cleaned.
func (d DirtySet) Without(idx int) DirtySet {
	return d &^ (1 << uint(idx))
}

// Len returns the number of dirty cells.
// Complexity: O(1).
func (d DirtySet) Len() int {
	return bits.OnesCount64(uint64(d))
}

// Empty reports whether no dirty cells remain.
func (d DirtySet) Empty() bool {
	return d == 0
}

// Indices returns the dirty cell indices in ascending (row-major) order.
func (d DirtySet) Indices() []int {
	out := make([]int, 0, d.Len())
	for m := uint64(d); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}
