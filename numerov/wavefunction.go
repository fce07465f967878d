// SPDX-License-Identifier: MIT

package numerov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rydberg/quantum"
)

// latticeTolerance is the slack, in units of dx, for grid alignment checks.
const latticeTolerance = 1e-6

// Wavefunction is a normalized solution together with its grid description.
// It is a plain value meant to be handed to other engines.
type Wavefunction[S quantum.Scalar] struct {
	State quantum.State
	Xmin  float64
	Dx    float64
	Y     []S
}

// X returns the grid coordinate of sample i.
func (w Wavefunction[S]) X(i int) float64 { return w.Xmin + float64(i)*w.Dx }

// Len is the number of samples.
func (w Wavefunction[S]) Len() int { return len(w.Y) }

// CountNodes counts sign changes of y, skipping exact zeros (the boundary
// point and an all-zero tail carry no sign).
func CountNodes(y []float64) int {
	nodes := 0
	prev := 0.0
	for _, v := range y {
		if v == 0 {
			continue
		}
		if prev != 0 && math.Signbit(v) != math.Signbit(prev) {
			nodes++
		}
		prev = v
	}

	return nodes
}

// RadialElement returns ⟨a| r^power |b⟩ = 2·Σ y_a·y_b·x^(2+2·power)·dx over
// the overlap of both grids. With power 0 and a == b it is 1 for a
// normalized wavefunction.
//
// Errors: ErrGridMismatch when the step differs or the grids are offset
// by a non-integer number of steps.
//
// Complexity: O(overlap).
func RadialElement(a, b Wavefunction[float64], power int) (float64, error) {
	if a.Dx != b.Dx || !(a.Dx > 0) {
		return 0, fmt.Errorf("dx %v vs %v: %w", a.Dx, b.Dx, ErrGridMismatch)
	}
	dx := a.Dx
	shift := (b.Xmin - a.Xmin) / dx
	offset := math.Round(shift)
	if math.Abs(shift-offset) > latticeTolerance {
		return 0, fmt.Errorf("xmin %v vs %v: %w", a.Xmin, b.Xmin, ErrGridMismatch)
	}

	// ia/ib: first shared sample in a and b.
	ia, ib := 0, 0
	if offset > 0 {
		ia = int(offset)
	} else {
		ib = int(-offset)
	}
	count := min(len(a.Y)-ia, len(b.Y)-ib)
	if count <= 0 {
		return 0, nil
	}

	weighted := make([]float64, count)
	exp := float64(2 + 2*power)
	for k := range weighted {
		weighted[k] = a.Y[ia+k] * math.Pow(a.X(ia+k), exp)
	}

	return 2 * floats.Dot(weighted, b.Y[ib:ib+count]) * dx, nil
}

// RadialMatrix holds the upper triangle of ⟨i| r^power |j⟩ over a basis.
type RadialMatrix struct {
	Dim     int
	Power   int
	Entries []quantum.Triple[float64] // Row ≤ Col, non-zero only
}

// NewRadialMatrix evaluates RadialElement for every pair i ≤ j of wfs.
func NewRadialMatrix(wfs []Wavefunction[float64], power int) (RadialMatrix, error) {
	m := RadialMatrix{Dim: len(wfs), Power: power}
	for i := range wfs {
		for j := i; j < len(wfs); j++ {
			v, err := RadialElement(wfs[i], wfs[j], power)
			if err != nil {
				return RadialMatrix{}, fmt.Errorf("element (%d,%d): %w", i, j, err)
			}
			if v == 0 {
				continue
			}
			m.Entries = append(m.Entries, quantum.Triple[float64]{Row: uint32(i), Col: uint32(j), Val: v})
		}
	}

	return m, nil
}

// Dense expands the triangle into a symmetric gonum matrix.
// It returns nil for an empty basis.
func (m RadialMatrix) Dense() *mat.SymDense {
	if m.Dim == 0 {
		return nil
	}
	d := mat.NewSymDense(m.Dim, nil)
	for _, e := range m.Entries {
		d.SetSym(int(e.Row), int(e.Col), e.Val)
	}

	return d
}
