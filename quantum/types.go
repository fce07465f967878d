// SPDX-License-Identifier: MIT

package quantum

import "math"

// Spin is the spin quantum number of the valence electron.
const Spin = 0.5

// jTolerance is the slack used when comparing half-integer j values.
const jTolerance = 1e-9

// Scalar enumerates the element types a wavefunction can be computed in.
// The set is closed on purpose: solvers switch on the concrete type.
type Scalar interface {
	float64 | complex128
}

// State is the QuantumState of one valence electron.
//
// Fields:
//   - Species — element label, e.g. "Rb" or "H".
//   - N       — principal quantum number, N ≥ 1.
//   - L       — orbital angular momentum, 0 ≤ L < N.
//   - J       — total angular momentum, |J − L| = ½.
//
// Construct with NewState; a literal State must pass Validate before use.
type State struct {
	Species string
	N       int
	L       int
	J       float64
}

// Parity labels the behavior of a state under a symmetry operation.
// NA marks an operation that is not a symmetry of the system.
type Parity int

const (
	// Even parity (+1).
	Even Parity = 1

	// Odd parity (−1).
	Odd Parity = -1

	// NA means the parity is not defined.
	NA Parity = math.MaxInt32
)

// Symmetry describes a block of a Hamiltonian by its behavior under
// inversion, reflection and permutation plus the rotation quantum number.
// It is comparable and may be used as a map key directly.
type Symmetry struct {
	Inversion   Parity
	Reflection  Parity
	Permutation Parity
	Rotation    int
}

// Triple is one matrix element addressed by (Row, Col).
type Triple[S Scalar] struct {
	Row uint32
	Col uint32
	Val S
}
