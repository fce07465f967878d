// SPDX-License-Identifier: MIT

package numerov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rydberg/quantum"
)

// Normalize rescales y in place so that Σ|y[i]|²·x[i]²·dx = ½ and returns
// the norm √(2·Σ|y[i]|²·x[i]²·dx) it divided by.
//
// A zero norm (all-zero y) leaves y untouched and returns 0.
// The x² weight is the volume element of the √r substitution.
//
// Errors:
//   - ErrDimensionMismatch if len(y) != g.Len().
//   - ErrNonFinite if the norm overflows or is NaN.
//
// Complexity: O(N).
func Normalize[S quantum.Scalar](g Grid, y []S) (float64, error) {
	if len(y) != g.Len() {
		return 0, fmt.Errorf("len(y)=%d, grid=%d: %w", len(y), g.Len(), ErrDimensionMismatch)
	}

	sum := 0.0
	for i, v := range y {
		x := g.x[i]
		sum += abs2(v) * x * x * g.dx
	}
	norm := math.Sqrt(2 * sum)
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return 0, fmt.Errorf("norm=%v: %w", norm, ErrNonFinite)
	}
	if norm == 0 {
		return 0, nil
	}

	// Fast path: real wavefunctions go through gonum's scaled kernel.
	if yr, ok := any(y).([]float64); ok {
		floats.Scale(1/norm, yr)

		return norm, nil
	}
	inv := fromReal[S](1 / norm)
	for i := range y {
		y[i] *= inv
	}

	return norm, nil
}
