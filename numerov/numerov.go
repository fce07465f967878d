// SPDX-License-Identifier: MIT

package numerov

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/rydberg/qdefect"
	"github.com/katalvlaran/rydberg/quantum"
)

// Numerov is one computation unit: a state, its parameters, its grid and
// the wavefunction buffer it owns exclusively.
//
// A unit is not safe for concurrent Integrate calls. Distinct units share
// nothing and may run on separate goroutines.
type Numerov[S quantum.Scalar] struct {
	state  quantum.State
	params qdefect.Parameters
	grid   Grid
	pot    Potential
	y      []S
	norm   float64
	logger *slog.Logger
}

// New validates (species, n, l, j), fetches the parameter bundle from p and
// builds the grid and a zero-filled wavefunction.
//
// Errors:
//   - ErrNilProvider if p is nil.
//   - quantum.ErrInvalidState for invalid quantum numbers.
//   - whatever p returns (e.g. qdefect.ErrNotFound), wrapped.
//   - qdefect.ErrInvalidParameters, ErrBadGrid.
func New[S quantum.Scalar](ctx context.Context, p qdefect.Provider, species string, n, l int, j float64, opts ...Option) (*Numerov[S], error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	st, err := quantum.NewState(species, n, l, j)
	if err != nil {
		return nil, err
	}
	params, err := p.Parameters(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("parameters for %s: %w", st, err)
	}

	return NewWithParameters[S](st, params, opts...)
}

// NewWithParameters builds a unit from an explicit parameter bundle.
func NewWithParameters[S quantum.Scalar](st quantum.State, params qdefect.Parameters, opts ...Option) (*Numerov[S], error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", st, err)
	}
	o := gatherOptions(opts...)

	grid, err := BuildGrid(st.N, st.L, o.dx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", st, err)
	}
	o.logger.Debug("numerov grid built",
		slog.String("state", st.String()),
		slog.Float64("xmin", grid.xmin),
		slog.Float64("xmax", grid.xmax),
		slog.Float64("dx", grid.dx),
		slog.Int("nsteps", grid.Len()),
	)

	return &Numerov[S]{
		state:  st,
		params: params,
		grid:   grid,
		pot:    NewPotential(params, st),
		y:      make([]S, grid.Len()),
		logger: o.logger,
	}, nil
}

// Axis returns a copy of the x = √r grid.
func (nm *Numerov[S]) Axis() []float64 { return nm.grid.Points() }

// Integrate runs the backward recursion and the normalization and returns
// a copy of the wavefunction (len == len(Axis())).
//
// Every call starts from a zeroed buffer, so repeated calls return
// identical results.
//
// Errors: ErrNonFinite when the recursion or the norm leaves float range.
func (nm *Numerov[S]) Integrate() ([]S, error) {
	if err := Integrate(nm.grid, nm.pot, SeedAmplitude(nm.state.N, nm.state.L), nm.y); err != nil {
		return nil, fmt.Errorf("%s: %w", nm.state, err)
	}
	norm, err := Normalize(nm.grid, nm.y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nm.state, err)
	}
	nm.norm = norm
	nm.logger.Debug("numerov integrated",
		slog.String("state", nm.state.String()),
		slog.Float64("norm", norm),
	)

	return slices.Clone(nm.y), nil
}

// Wavefunction integrates and returns a self-describing snapshot.
func (nm *Numerov[S]) Wavefunction() (Wavefunction[S], error) {
	y, err := nm.Integrate()
	if err != nil {
		return Wavefunction[S]{}, err
	}

	return Wavefunction[S]{State: nm.state, Xmin: nm.grid.xmin, Dx: nm.grid.dx, Y: y}, nil
}

// Norm is the factor the last successful Integrate divided by (0 before).
func (nm *Numerov[S]) Norm() float64 { return nm.norm }

// State returns the quantum state of the unit.
func (nm *Numerov[S]) State() quantum.State { return nm.state }

// Parameters returns the quantum-defect bundle in use.
func (nm *Numerov[S]) Parameters() qdefect.Parameters { return nm.params }

// Grid returns the immutable grid.
func (nm *Numerov[S]) Grid() Grid { return nm.grid }

// Potential returns the potential model of the unit.
func (nm *Numerov[S]) Potential() Potential { return nm.pot }
