// SPDX-License-Identifier: MIT

// Package rydberg computes radial wavefunctions of single-valence-electron
// Rydberg atoms by Numerov integration on a square-root grid.
//
// 🚀 What is inside?
//
//	A small, deterministic numerical core with the plumbing around it:
//		• Quantum numbers, parity labels and symmetry ordering (quantum/)
//		• Quantum-defect parameters from YAML, TOML or sqlite (qdefect/)
//		• Grid, model potential, backward integration, normalization (numerov/)
//		• Bounded concurrent integration with Prometheus metrics (batch/)
//
// The core is a single type:
//
//	nm, err := numerov.New[float64](ctx, provider, "Rb", 30, 0, 0.5)
//	x := nm.Axis()         // x = √r
//	y, err := nm.Integrate() // Σ y²·x²·dx = ½
//
// The energy is an input: it comes from the Rydberg–Ritz quantum defects of
// the provider, and the potential is the Marinescu model potential with a
// spin-orbit term for l < 4. Results are bitwise reproducible for identical
// inputs, and the same code runs over complex128 when instantiated so.
//
// Layout:
//
//	quantum/ — State, Scalar, Parity, Symmetry, Triple
//	qdefect/ — Provider, Table, Store, Cache, embedded default table
//	numerov/ — Grid, Potential, Integrate, Normalize, Numerov, RadialElement
//	batch/   — Solve, Metrics
//	examples/ — end-to-end rubidium walkthrough
//
//	go get github.com/katalvlaran/rydberg
package rydberg
