// SPDX-License-Identifier: MIT

package quantum

import (
	"cmp"
	"slices"
	"strconv"
)

// String returns "EVEN", "ODD", "NA" or the raw value.
func (p Parity) String() string {
	switch p {
	case Even:
		return "EVEN"
	case Odd:
		return "ODD"
	case NA:
		return "NA"
	default:
		return "Parity(" + strconv.Itoa(int(p)) + ")"
	}
}

// Compare orders symmetries lexicographically by
// (Inversion, Reflection, Permutation, Rotation).
//
// Returns −1 if a < b, 0 if a == b and +1 if a > b. The order is total:
// Compare(a, b) == 0 exactly when a == b.
//
// Complexity: O(1).
func Compare(a, b Symmetry) int {
	if c := cmp.Compare(a.Inversion, b.Inversion); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Reflection, b.Reflection); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Permutation, b.Permutation); c != 0 {
		return c
	}

	return cmp.Compare(a.Rotation, b.Rotation)
}

// Less reports whether s sorts before other.
func (s Symmetry) Less(other Symmetry) bool { return Compare(s, other) < 0 }

// SortSymmetries sorts syms in place in Compare order.
func SortSymmetries(syms []Symmetry) { slices.SortFunc(syms, Compare) }
