// SPDX-License-Identifier: MIT

package numerov

import (
	"fmt"
	"math"
	"slices"
)

const (
	// DefaultStep is the grid spacing in x = √r.
	DefaultStep = 0.01

	// innerRadicandFloor keeps xmin away from the 1/r singularities; ⌊√2.08⌋ = 1.
	innerRadicandFloor = 2.08

	// outerPadding widens xmax past the classical outer turning point.
	outerPadding = 15

	// minGridPoints is the smallest grid the three-point recursion accepts.
	minGridPoints = 3
)

// Grid is the immutable RadialGrid: x[i] = xmin + i·dx for i < Len().
type Grid struct {
	xmin float64
	xmax float64
	dx   float64
	x    []float64
}

// BuildGrid derives the grid for principal quantum number n and orbital
// angular momentum l.
//
//	inner  = n² − n·√max(0, n² − (l−1)²)
//	xmin   = ⌊√max(2.08, inner)⌋
//	xmax   = √(2n(n+15))
//	nsteps = ⌈(xmax − xmin)/dx⌉
//
// xmin is an integer ≥ 1, so grids of different states with the same dx
// lie on one lattice (see RadialElement).
//
// Errors: ErrBadGrid for n < 1, l ∉ [0, n), dx not finite and positive,
// or fewer than three points.
//
// Complexity: O(nsteps).
func BuildGrid(n, l int, dx float64) (Grid, error) {
	if n < 1 || l < 0 || l >= n {
		return Grid{}, fmt.Errorf("n=%d l=%d: %w", n, l, ErrBadGrid)
	}
	if !(dx > 0) || math.IsInf(dx, 0) {
		return Grid{}, fmt.Errorf("dx=%v: %w", dx, ErrBadGrid)
	}

	nf := float64(n)
	lm1 := float64(l - 1)
	inner := nf*nf - nf*math.Sqrt(math.Max(0, nf*nf-lm1*lm1))
	xmin := math.Floor(math.Sqrt(math.Max(innerRadicandFloor, inner)))
	xmax := math.Sqrt(2 * nf * (nf + outerPadding))

	steps := math.Ceil((xmax - xmin) / dx)
	if steps < minGridPoints || steps > math.MaxInt32 {
		return Grid{}, fmt.Errorf("dx=%v gives %v points: %w", dx, steps, ErrBadGrid)
	}
	nsteps := int(steps)

	x := make([]float64, nsteps)
	for i := range x {
		x[i] = xmin + float64(i)*dx
	}

	return Grid{xmin: xmin, xmax: xmax, dx: dx, x: x}, nil
}

// Xmin is the first grid point.
func (g Grid) Xmin() float64 { return g.xmin }

// Xmax is the requested outer bound; the last point lies in (Xmax−Dx, Xmax].
func (g Grid) Xmax() float64 { return g.xmax }

// Dx is the uniform spacing.
func (g Grid) Dx() float64 { return g.dx }

// Len is nsteps.
func (g Grid) Len() int { return len(g.x) }

// At returns x[i]; it panics like a slice index when i is out of range.
func (g Grid) At(i int) float64 { return g.x[i] }

// Points returns a copy of the grid values.
func (g Grid) Points() []float64 { return slices.Clone(g.x) }
