// SPDX-License-Identifier: MIT

// Package numerov computes the radial bound-state wavefunction of the
// valence electron of an alkali-like atom by integrating the radial
// Schrödinger equation with the Numerov method.
//
// 🚀 How it works
//
//	The physical radius r spans many orders of magnitude for a Rydberg
//	state, so the equation is rewritten in x = √r, where a uniform grid
//	resolves both the core region and the O(n²) outer lobe:
//
//	  y''(x) = g(x)·y(x)
//	  g(x)   = (2l+½)(2l+3/2)/x² + 8x²·(V(x²) − E)
//
//	V is the Marinescu model potential (screened Coulomb + core
//	polarization + spin-orbit), E the bound-state energy taken from the
//	quantum-defect provider.
//
// ✨ Pipeline
//
//  1. BuildGrid   — x ∈ [xmin, xmax] with step dx (default 0.01).
//  2. Potential   — V(r) and g(x), pure functions of the parameters.
//  3. Integrate   — backward Numerov recursion from xmax to xmin, seeded
//     with ±1e−10 at the second-to-last point (sign by parity of n−l).
//  4. Normalize   — scale so that Σ|y|²·x²·dx = ½.
//
// Backward integration follows the decaying solution in the classically
// forbidden outer region; forward integration would be swamped by the
// growing one.
//
// ⚙️ Usage:
//
//	tbl, _ := qdefect.DefaultTable()
//	nm, err := numerov.New[float64](ctx, tbl, "Rb", 40, 0, 0.5)
//	if err != nil {
//	  // quantum.ErrInvalidState, qdefect.ErrNotFound, ErrBadGrid
//	}
//	x := nm.Axis()
//	y, err := nm.Integrate() // len(y) == len(x)
//
// The returned y is the transformed amplitude on the x grid; it is not
// converted back to R(r). Numerov is instantiated with float64 or
// complex128 (quantum.Scalar). A unit is single-goroutine; independent
// units share nothing and may run in parallel.
//
// Complexity: O(nsteps) time and memory per unit, nsteps ≈ √(2n(n+15))/dx.
package numerov
