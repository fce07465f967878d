// SPDX-License-Identifier: MIT

package numerov

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/rydberg/quantum"
)

// fromReal lifts a real coefficient into S.
func fromReal[S quantum.Scalar](v float64) S {
	var out S
	switch p := any(&out).(type) {
	case *float64:
		*p = v
	case *complex128:
		*p = complex(v, 0)
	}

	return out
}

// abs2 returns |v|².
func abs2[S quantum.Scalar](v S) float64 {
	switch t := any(v).(type) {
	case float64:
		return t * t
	case complex128:
		return real(t)*real(t) + imag(t)*imag(t)
	}

	return 0
}

// isFinite reports whether v (both parts for complex) is neither NaN nor ±Inf.
func isFinite[S quantum.Scalar](v S) bool {
	switch t := any(v).(type) {
	case float64:
		return !math.IsNaN(t) && !math.IsInf(t, 0)
	case complex128:
		return !cmplx.IsNaN(t) && !cmplx.IsInf(t)
	}

	return false
}
