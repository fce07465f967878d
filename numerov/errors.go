// SPDX-License-Identifier: MIT

package numerov

import "errors"

var (
	// ErrBadGrid is returned when (n, l, dx) cannot produce a usable grid.
	ErrBadGrid = errors.New("numerov: invalid grid parameters")

	// ErrNonFinite signals NaN or ±Inf produced by the recursion or the norm.
	ErrNonFinite = errors.New("numerov: non-finite value")

	// ErrDimensionMismatch indicates a wavefunction whose length differs from the grid.
	ErrDimensionMismatch = errors.New("numerov: dimension mismatch")

	// ErrGridMismatch marks wavefunctions whose grids do not share a lattice.
	ErrGridMismatch = errors.New("numerov: grids are not aligned")

	// ErrNilProvider indicates that a nil qdefect.Provider was passed to New.
	ErrNilProvider = errors.New("numerov: nil parameter provider")
)
