// SPDX-License-Identifier: MIT

// Package quantum holds the small value types shared by the rydberg
// packages: the single-electron quantum state, the scalar kinds a
// wavefunction may be computed in, the symmetry descriptor used to key
// Hamiltonian blocks, and a plain (row, col, value) record.
//
// 🚀 What lives here?
//
//	• State      — (species, n, l, j) of one valence electron, validated once.
//	• Scalar     — float64 | complex128, the type parameter of the solvers.
//	• Parity     — EVEN / ODD / NA labels.
//	• Symmetry   — (inversion, reflection, permutation, rotation) with a
//	               total lexicographic order (Compare / Less).
//	• Triple     — one matrix element (Row, Col, Val) for external engines.
//
// All types are immutable values: copy them freely across goroutines.
//
// ⚙️ Usage:
//
//	st, err := quantum.NewState("Rb", 30, 0, 0.5)
//	if err != nil {
//	  // ErrInvalidState
//	}
//	fmt.Println(st) // Rb 30S1/2
package quantum
