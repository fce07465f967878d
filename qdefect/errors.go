// SPDX-License-Identifier: MIT

package qdefect

import "errors"

var (
	// ErrNotFound is returned when no record covers the requested state.
	ErrNotFound = errors.New("qdefect: no parameters for state")

	// ErrInvalidParameters marks a record or resolved bundle that is not
	// physically usable (non-finite values, rc ≤ 0, n* ≤ 0, energy ≥ 0).
	ErrInvalidParameters = errors.New("qdefect: invalid parameters")

	// ErrUnsupportedFormat is returned by LoadTable for unknown file types.
	ErrUnsupportedFormat = errors.New("qdefect: unsupported table format")

	// ErrDuplicateRecord flags two records with the same key in one table.
	ErrDuplicateRecord = errors.New("qdefect: duplicate record")
)
