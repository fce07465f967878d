// SPDX-License-Identifier: MIT

package numerov

import (
	"fmt"

	"github.com/katalvlaran/rydberg/quantum"
)

// seedMagnitude is the amplitude placed next to the outer boundary.
// Only its sign survives normalization.
const seedMagnitude = 1e-10

// SeedAmplitude returns the boundary seed for (n, l):
// −1e−10 when n−l is even, +1e−10 when it is odd.
func SeedAmplitude(n, l int) float64 {
	if (n-l)%2 == 0 {
		return -seedMagnitude
	}

	return seedMagnitude
}

// Integrate runs the backward Numerov recursion over g and stores the
// unnormalized solution in y.
//
// Implementation:
//   - Stage 1: zero y, so a reused buffer starts clean (y[N−1] = 0).
//   - Stage 2: y[N−2] = seed.
//   - Stage 3: for i = N−3 … 0
//     A = (2 + 5/6·dx²·g(x[i+1]))·y[i+1]
//     B = (1 − 1/12·dx²·g(x[i+2]))·y[i+2]
//     C =  1 − 1/12·dx²·g(x[i])
//     y[i] = (A − B)/C
//
// Each g(x[i]) is evaluated once and carried down two steps.
//
// Errors:
//   - ErrDimensionMismatch if len(y) != g.Len().
//   - ErrNonFinite (with the index) as soon as a NaN/Inf appears.
//
// Complexity: O(N) time, O(1) extra space.
func Integrate[S quantum.Scalar](g Grid, pot Potential, seed float64, y []S) error {
	n := g.Len()
	if len(y) != n {
		return fmt.Errorf("len(y)=%d, grid=%d: %w", len(y), n, ErrDimensionMismatch)
	}
	if n < minGridPoints {
		return fmt.Errorf("grid of %d points: %w", n, ErrBadGrid)
	}

	clear(y)
	y[n-2] = fromReal[S](seed)

	dx := g.dx
	gFar := pot.G(g.x[n-1])  // g(x[i+2])
	gNear := pot.G(g.x[n-2]) // g(x[i+1])
	for i := n - 3; i >= 0; i-- {
		gi := pot.G(g.x[i])
		a := fromReal[S](2 + 5.0/6.0*dx*dx*gNear) * y[i+1]
		b := fromReal[S](1 - 1.0/12.0*dx*dx*gFar) * y[i+2]
		c := fromReal[S](1 - 1.0/12.0*dx*dx*gi)
		y[i] = (a - b) / c
		if !isFinite(y[i]) {
			return fmt.Errorf("x[%d]=%v: %w", i, g.x[i], ErrNonFinite)
		}
		gFar, gNear = gNear, gi
	}

	return nil
}
