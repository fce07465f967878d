// SPDX-License-Identifier: MIT

package qdefect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rydberg/quantum"
)

// Validate rejects bundles the potential model cannot evaluate.
func (p Parameters) Validate() error {
	for _, v := range [...]float64{p.Z, p.A1, p.A2, p.A3, p.A4, p.Ac, p.Rc, p.Energy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite field: %w", ErrInvalidParameters)
		}
	}
	if p.Rc <= 0 {
		return fmt.Errorf("rc=%v must be > 0: %w", p.Rc, ErrInvalidParameters)
	}
	if p.Energy >= 0 {
		return fmt.Errorf("energy=%v is not a bound state: %w", p.Energy, ErrInvalidParameters)
	}

	return nil
}

// QuantumDefect evaluates the Rydberg–Ritz expansion δ(n) for rr.
func QuantumDefect(n int, rr RydbergRitz) float64 {
	m := float64(n) - rr.D0
	m2 := m * m

	return rr.D0 + rr.D2/m2 + rr.D4/(m2*m2) + rr.D6/(m2*m2*m2) + rr.D8/(m2*m2*m2*m2)
}

// Energy returns −½·(ry/Ry∞)/(n−δ)² in atomic units. A nil rr means a
// hydrogenic level (δ = 0).
func Energy(n int, ry float64, rr *RydbergRitz) (float64, error) {
	delta := 0.0
	if rr != nil {
		delta = QuantumDefect(n, *rr)
	}
	nstar := float64(n) - delta
	if !(nstar > 0) || math.IsInf(nstar, 0) {
		return 0, fmt.Errorf("effective quantum number %v for n=%d: %w", nstar, n, ErrInvalidParameters)
	}

	return -0.5 * (ry / RydbergInfinity) / (nstar * nstar), nil
}

// resolve assembles the bundle for st from the selected records.
func resolve(st quantum.State, ry float64, mp ModelPotential, rr *RydbergRitz) (Parameters, error) {
	e, err := Energy(st.N, ry, rr)
	if err != nil {
		return Parameters{}, fmt.Errorf("%s: %w", st, err)
	}
	p := Parameters{
		Z:      mp.Z,
		A1:     mp.A1,
		A2:     mp.A2,
		A3:     mp.A3,
		A4:     mp.A4,
		Ac:     mp.Ac,
		Rc:     mp.Rc,
		Energy: e,
	}
	if err = p.Validate(); err != nil {
		return Parameters{}, fmt.Errorf("%s: %w", st, err)
	}

	return p, nil
}

// validateSpecies checks one species block before it enters a Table or Store.
func validateSpecies(sp Species) error {
	if sp.Name == "" {
		return fmt.Errorf("empty species name: %w", ErrInvalidParameters)
	}
	if !(sp.Ry > 0) || math.IsInf(sp.Ry, 0) {
		return fmt.Errorf("%s: ry=%v must be finite and > 0: %w", sp.Name, sp.Ry, ErrInvalidParameters)
	}
	seenL := make(map[int]struct{}, len(sp.ModelPotential))
	for _, mp := range sp.ModelPotential {
		if mp.L < 0 {
			return fmt.Errorf("%s: model potential l=%d: %w", sp.Name, mp.L, ErrInvalidParameters)
		}
		if _, dup := seenL[mp.L]; dup {
			return fmt.Errorf("%s: model potential l=%d: %w", sp.Name, mp.L, ErrDuplicateRecord)
		}
		seenL[mp.L] = struct{}{}
		for _, v := range [...]float64{mp.Ac, mp.Z, mp.A1, mp.A2, mp.A3, mp.A4, mp.Rc} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: model potential l=%d: %w", sp.Name, mp.L, ErrInvalidParameters)
			}
		}
		if mp.Rc <= 0 {
			return fmt.Errorf("%s: model potential l=%d rc=%v: %w", sp.Name, mp.L, mp.Rc, ErrInvalidParameters)
		}
	}
	for i, rr := range sp.RydbergRitz {
		if rr.L < 0 || rr.J < 0 {
			return fmt.Errorf("%s: rydberg-ritz l=%d j=%v: %w", sp.Name, rr.L, rr.J, ErrInvalidParameters)
		}
		for _, v := range [...]float64{rr.J, rr.D0, rr.D2, rr.D4, rr.D6, rr.D8} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: rydberg-ritz l=%d j=%v: %w", sp.Name, rr.L, rr.J, ErrInvalidParameters)
			}
		}
		for _, prev := range sp.RydbergRitz[:i] {
			if prev.L == rr.L && math.Abs(prev.J-rr.J) < jMatchTolerance {
				return fmt.Errorf("%s: rydberg-ritz l=%d j=%v: %w", sp.Name, rr.L, rr.J, ErrDuplicateRecord)
			}
		}
	}

	return nil
}
