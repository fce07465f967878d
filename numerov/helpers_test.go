// SPDX-License-Identifier: MIT

package numerov_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rydberg/numerov"
	"github.com/katalvlaran/rydberg/qdefect"
	"github.com/katalvlaran/rydberg/quantum"
)

// normTolerance bounds |Σ y²x²dx − ½| after normalization.
const normTolerance = 1e-6

// hydrogenParams is the pure-Coulomb bundle with the exact level −1/(2n²).
func hydrogenParams(n int) qdefect.Parameters {
	return qdefect.Parameters{Z: 1, Rc: 1, Energy: -0.5 / float64(n*n)}
}

// mustState builds a state or fails the test.
func mustState(t testing.TB, species string, n, l int, j float64) quantum.State {
	t.Helper()
	st, err := quantum.NewState(species, n, l, j)
	require.NoError(t, err)

	return st
}

// hydrogen returns an integrated real unit for H(n, l, j).
func hydrogen(t testing.TB, n, l int, j float64) (*numerov.Numerov[float64], []float64) {
	t.Helper()
	nm, err := numerov.NewWithParameters[float64](mustState(t, "H", n, l, j), hydrogenParams(n))
	require.NoError(t, err)
	y, err := nm.Integrate()
	require.NoError(t, err)

	return nm, y
}

// weightedSum returns Σ|y|²·x²·dx.
func weightedSum(x []float64, y []float64, dx float64) float64 {
	sum := 0.0
	for i := range y {
		sum += y[i] * y[i] * x[i] * x[i] * dx
	}

	return sum
}
