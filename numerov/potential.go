// SPDX-License-Identifier: MIT

package numerov

import (
	"math"

	"github.com/katalvlaran/rydberg/qdefect"
	"github.com/katalvlaran/rydberg/quantum"
)

// FineStructure is α (CODATA 2014).
const FineStructure = 7.2973525664e-3

// spinOrbitMaxL is the first l for which the spin-orbit term is dropped.
const spinOrbitMaxL = 4

// Potential is the effective single-electron potential of one state.
// All methods are pure; r is the physical radius, x = √r.
type Potential struct {
	Params qdefect.Parameters
	L      int
	J      float64
}

// NewPotential binds the parameter bundle to the angular quantum numbers of st.
func NewPotential(params qdefect.Parameters, st quantum.State) Potential {
	return Potential{Params: params, L: st.L, J: st.J}
}

// Charge is the screened charge Z_l(r) = 1 + (Z−1)e^{−a1 r} − r(a3 + a4 r)e^{−a2 r}.
func (p Potential) Charge(r float64) float64 {
	q := p.Params

	return 1 + (q.Z-1)*math.Exp(-q.A1*r) - r*(q.A3+q.A4*r)*math.Exp(-q.A2*r)
}

// Coulomb is −Z_l(r)/r.
func (p Potential) Coulomb(r float64) float64 {
	return -p.Charge(r) / r
}

// Polarization is −ac/(2r⁴)·(1 − e^{−(r/rc)⁶}).
func (p Potential) Polarization(r float64) float64 {
	q := p.Params

	return -q.Ac / (2 * r * r * r * r) * (1 - math.Exp(-math.Pow(r/q.Rc, 6)))
}

// SpinOrbit is α²/(4r³)·(j(j+1) − l(l+1) − s(s+1)); exactly zero for l ≥ 4.
func (p Potential) SpinOrbit(r float64) float64 {
	if p.L >= spinOrbitMaxL {
		return 0
	}
	l := float64(p.L)
	s := quantum.Spin

	return FineStructure * FineStructure / (4 * r * r * r) * (p.J*(p.J+1) - l*(l+1) - s*(s+1))
}

// V is the full effective potential at radius r.
func (p Potential) V(r float64) float64 {
	return p.Coulomb(r) + p.Polarization(r) + p.SpinOrbit(r)
}

// G is the coefficient of y'' = g·y at x = √r:
// (2l+½)(2l+3/2)/x² + 8x²(V(x²) − E).
func (p Potential) G(x float64) float64 {
	l := float64(p.L)
	x2 := x * x

	return (2*l+0.5)*(2*l+1.5)/x2 + 8*x2*(p.V(x2)-p.Params.Energy)
}
