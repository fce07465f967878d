// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rydberg/numerov"
	"github.com/katalvlaran/rydberg/qdefect"
	"github.com/katalvlaran/rydberg/quantum"
)

// Result is the integrated wavefunction of one state.
type Result struct {
	State quantum.State
	Axis  []float64 // x = √r
	Y     []float64 // normalized so that Σ y²·x²·dx = ½
	Nodes int
	Norm  float64
}

// Solve integrates every state with its own Numerov unit, at most
// WithConcurrency units at a time. results[i] belongs to states[i].
//
// Errors: ErrNilProvider; otherwise the first unit failure (or ctx
// cancellation), after which the remaining units are skipped.
func Solve(ctx context.Context, p qdefect.Provider, states []quantum.State, opts ...Option) ([]Result, error) {
	if p == nil {
		return nil, ErrNilProvider
	}
	o := gatherOptions(opts...)
	unitOpts := append([]numerov.Option{numerov.WithLogger(o.logger)}, o.unit...)

	results := make([]Result, len(states))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, st := range states {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res, points, err := solveOne(gCtx, p, st, unitOpts)
			o.metrics.observe(st.Species, time.Since(start), points, err)
			if err != nil {
				o.logger.Warn("numerov unit failed",
					slog.String("state", st.String()),
					slog.Any("error", err),
				)

				return fmt.Errorf("batch: %s: %w", st, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// solveOne builds and integrates one unit. points is the grid size, or 0
// when construction failed.
func solveOne(ctx context.Context, p qdefect.Provider, st quantum.State, opts []numerov.Option) (Result, int, error) {
	nm, err := numerov.New[float64](ctx, p, st.Species, st.N, st.L, st.J, opts...)
	if err != nil {
		return Result{}, 0, err
	}
	y, err := nm.Integrate()
	if err != nil {
		return Result{}, nm.Grid().Len(), err
	}

	return Result{
		State: st,
		Axis:  nm.Axis(),
		Y:     y,
		Nodes: numerov.CountNodes(y),
		Norm:  nm.Norm(),
	}, len(y), nil
}
