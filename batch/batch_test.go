// SPDX-License-Identifier: MIT

package batch_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rydberg/batch"
	"github.com/katalvlaran/rydberg/numerov"
	"github.com/katalvlaran/rydberg/qdefect"
	"github.com/katalvlaran/rydberg/quantum"
)

func mustState(t testing.TB, species string, n, l int, j float64) quantum.State {
	t.Helper()
	st, err := quantum.NewState(species, n, l, j)
	require.NoError(t, err)

	return st
}

func defaultTable(t testing.TB) *qdefect.Table {
	t.Helper()
	tbl, err := qdefect.DefaultTable()
	require.NoError(t, err)

	return tbl
}

// integrations reads rydberg_numerov_integrations_total{species,outcome}.
func integrations(t *testing.T, reg *prometheus.Registry, species, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "rydberg_numerov_integrations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if hasLabels(m, map[string]string{"species": species, "outcome": outcome}) {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func hasLabels(m *dto.Metric, want map[string]string) bool {
	matched := 0
	for _, lp := range m.GetLabel() {
		if v, ok := want[lp.GetName()]; ok && v == lp.GetValue() {
			matched++
		}
	}

	return matched == len(want)
}

// TestSolve_MatchesSingleUnits: the pool changes scheduling, not results.
func TestSolve_MatchesSingleUnits(t *testing.T) {
	tbl := defaultTable(t)
	ctx := context.Background()
	states := []quantum.State{
		mustState(t, "Rb", 30, 0, 0.5),
		mustState(t, "Rb", 30, 1, 0.5),
		mustState(t, "Rb", 31, 1, 1.5),
		mustState(t, "Rb", 28, 2, 2.5),
		mustState(t, "H", 6, 0, 0.5),
		mustState(t, "H", 9, 5, 5.5),
	}

	results, err := batch.Solve(ctx, tbl, states, batch.WithConcurrency(3))
	require.NoError(t, err)
	require.Len(t, results, len(states))

	for i, st := range states {
		nm, err := numerov.New[float64](ctx, tbl, st.Species, st.N, st.L, st.J)
		require.NoError(t, err)
		y, err := nm.Integrate()
		require.NoError(t, err)

		r := results[i]
		assert.Equal(t, st, r.State)
		assert.Equal(t, nm.Axis(), r.Axis, st.String())
		assert.Equal(t, y, r.Y, st.String())
		assert.Equal(t, numerov.CountNodes(y), r.Nodes)
		assert.Equal(t, nm.Norm(), r.Norm)
	}
}

// TestSolve_Empty returns an empty, non-nil slice.
func TestSolve_Empty(t *testing.T) {
	results, err := batch.Solve(context.Background(), defaultTable(t), nil)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

// TestSolve_FailureNamesState stops at the unknown species and logs it.
func TestSolve_FailureNamesState(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	states := []quantum.State{
		mustState(t, "Rb", 30, 0, 0.5),
		mustState(t, "Cs", 30, 0, 0.5),
	}

	results, err := batch.Solve(context.Background(), defaultTable(t), states,
		batch.WithConcurrency(1), batch.WithLogger(logger))
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, qdefect.ErrNotFound)
	assert.Contains(t, err.Error(), "Cs 30S1/2")
	assert.Contains(t, buf.String(), "numerov unit failed")
}

// TestSolve_Canceled honors a context canceled up front.
func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.Solve(ctx, defaultTable(t), []quantum.State{mustState(t, "H", 3, 0, 0.5)})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_NilProvider is rejected before any work starts.
func TestSolve_NilProvider(t *testing.T) {
	_, err := batch.Solve(context.Background(), nil, nil)
	assert.ErrorIs(t, err, batch.ErrNilProvider)
}

// TestSolve_Step forwards the grid spacing to every unit.
func TestSolve_Step(t *testing.T) {
	results, err := batch.Solve(context.Background(), defaultTable(t),
		[]quantum.State{mustState(t, "H", 3, 0, 0.5)}, batch.WithStep(0.02))
	require.NoError(t, err)
	ax := results[0].Axis
	require.GreaterOrEqual(t, len(ax), 2)
	assert.InDelta(t, 0.02, ax[1]-ax[0], 1e-12)
}

// TestSolve_Metrics counts successes and failures per species.
func TestSolve_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := batch.NewMetrics(reg)
	tbl := defaultTable(t)
	ctx := context.Background()

	_, err := batch.Solve(ctx, tbl, []quantum.State{
		mustState(t, "Rb", 30, 0, 0.5),
		mustState(t, "Rb", 32, 0, 0.5),
		mustState(t, "H", 4, 1, 1.5),
	}, batch.WithMetrics(m))
	require.NoError(t, err)

	_, err = batch.Solve(ctx, tbl, []quantum.State{mustState(t, "Cs", 30, 0, 0.5)}, batch.WithMetrics(m))
	require.Error(t, err)

	assert.Equal(t, 2.0, integrations(t, reg, "Rb", batch.OutcomeOK))
	assert.Equal(t, 1.0, integrations(t, reg, "H", batch.OutcomeOK))
	assert.Equal(t, 1.0, integrations(t, reg, "Cs", batch.OutcomeError))
	assert.Equal(t, 0.0, integrations(t, reg, "Rb", batch.OutcomeError))

	n, err := testutil.GatherAndCount(reg, "rydberg_numerov_integration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, n) // one series per species
	n, err = testutil.GatherAndCount(reg, "rydberg_numerov_grid_points")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestOptions_PanicOnNonsense guards programmer errors.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { batch.WithConcurrency(0) })
	assert.Panics(t, func() { batch.WithLogger(nil) })
	assert.Panics(t, func() { batch.WithMetrics(nil) })
	assert.Panics(t, func() { batch.WithStep(0) })
}
