// SPDX-License-Identifier: MIT

package quantum

import "errors"

var (
	// ErrInvalidState is returned when (species, n, l, j) does not describe
	// a bound state of a single valence electron.
	ErrInvalidState = errors.New("quantum: invalid quantum state")
)
