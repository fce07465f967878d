// SPDX-License-Identifier: MIT

package quantum

import (
	"fmt"
	"math"
	"strconv"
)

// orbitalLetters maps l to the spectroscopic letter (j is skipped by convention).
var orbitalLetters = []string{"S", "P", "D", "F", "G", "H", "I", "K", "L", "M", "N", "O", "Q", "R", "T", "U", "V"}

// NewState validates (species, n, l, j) and returns the State.
//
// Errors:
//   - ErrInvalidState wrapped with the violated rule.
func NewState(species string, n, l int, j float64) (State, error) {
	st := State{Species: species, N: n, L: l, J: j}
	if err := st.Validate(); err != nil {
		return State{}, err
	}

	return st, nil
}

// Validate checks the State invariants.
//   - species non-empty
//   - n ≥ 1 and 0 ≤ l < n
//   - j finite, 2j integral and |j − l| = ½
func (s State) Validate() error {
	if s.Species == "" {
		return fmt.Errorf("empty species: %w", ErrInvalidState)
	}
	if s.N < 1 {
		return fmt.Errorf("n=%d must be >= 1: %w", s.N, ErrInvalidState)
	}
	if s.L < 0 || s.L >= s.N {
		return fmt.Errorf("l=%d must satisfy 0 <= l < n=%d: %w", s.L, s.N, ErrInvalidState)
	}
	if math.IsNaN(s.J) || math.IsInf(s.J, 0) || s.J < 0 {
		return fmt.Errorf("j=%v must be finite and non-negative: %w", s.J, ErrInvalidState)
	}
	twoJ := 2 * s.J
	if math.Abs(twoJ-math.Round(twoJ)) > jTolerance {
		return fmt.Errorf("j=%v is not a half-integer: %w", s.J, ErrInvalidState)
	}
	if math.Abs(math.Abs(s.J-float64(s.L))-Spin) > jTolerance {
		return fmt.Errorf("j=%v incompatible with l=%d and s=1/2: %w", s.J, s.L, ErrInvalidState)
	}

	return nil
}

// S returns the spin quantum number (always ½).
func (s State) S() float64 { return Spin }

// String renders the state in spectroscopic notation, e.g. "Rb 30S1/2".
func (s State) String() string {
	letter := "[l=" + strconv.Itoa(s.L) + "]"
	if s.L >= 0 && s.L < len(orbitalLetters) {
		letter = orbitalLetters[s.L]
	}

	return fmt.Sprintf("%s %d%s%s", s.Species, s.N, letter, jLabel(s.J))
}

// jLabel prints j as "k/2" for half-integers and "k" otherwise.
func jLabel(j float64) string {
	twoJ := int(math.Round(2 * j))
	if twoJ%2 == 0 {
		return strconv.Itoa(twoJ / 2)
	}

	return strconv.Itoa(twoJ) + "/2"
}
