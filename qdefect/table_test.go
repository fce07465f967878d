// SPDX-License-Identifier: MIT

package qdefect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rydberg/qdefect"
	"github.com/katalvlaran/rydberg/quantum"
)

// mustState builds a state or fails the test.
func mustState(t testing.TB, species string, n, l int, j float64) quantum.State {
	t.Helper()
	st, err := quantum.NewState(species, n, l, j)
	require.NoError(t, err)

	return st
}

// testSpecies is a small two-row species used across tests.
func testSpecies() qdefect.Species {
	return qdefect.Species{
		Name: "X",
		Ry:   qdefect.RydbergInfinity,
		ModelPotential: []qdefect.ModelPotential{
			{L: 2, Ac: 2, Z: 11, A1: 3, A2: 2, A3: -1, A4: 0.5, Rc: 2},
			{L: 0, Ac: 1, Z: 11, A1: 1, A2: 1, A3: 1, A4: 1, Rc: 1},
		},
		RydbergRitz: []qdefect.RydbergRitz{
			{L: 0, J: 0.5, D0: 1.35},
			{L: 1, J: 1.5, D0: 0.85},
		},
	}
}

// TestTable_ModelPotentialFallsBackToLowerL picks the largest tabulated L ≤ l.
func TestTable_ModelPotentialFallsBackToLowerL(t *testing.T) {
	tbl, err := qdefect.NewTable(testSpecies())
	require.NoError(t, err)
	ctx := context.Background()

	p, err := tbl.Parameters(ctx, mustState(t, "X", 10, 1, 1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.A1, "l=1 uses the l=0 row")

	p, err = tbl.Parameters(ctx, mustState(t, "X", 10, 5, 5.5))
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.A1, "l=5 uses the l=2 row")
	assert.InDelta(t, -0.5/100, p.Energy, 1e-15, "beyond the tabulated defects the level is hydrogenic")
}

// TestTable_RydbergRitzExactMatch requires (L, J) to match inside the tabulated range.
func TestTable_RydbergRitzExactMatch(t *testing.T) {
	tbl, err := qdefect.NewTable(testSpecies())
	require.NoError(t, err)
	ctx := context.Background()

	p, err := tbl.Parameters(ctx, mustState(t, "X", 10, 0, 0.5))
	require.NoError(t, err)
	assert.InDelta(t, -0.5/((10-1.35)*(10-1.35)), p.Energy, 1e-15)

	_, err = tbl.Parameters(ctx, mustState(t, "X", 10, 1, 0.5))
	assert.ErrorIs(t, err, qdefect.ErrNotFound, "P1/2 is not tabulated while P3/2 is")
}

// TestTable_UnknownSpecies returns ErrNotFound.
func TestTable_UnknownSpecies(t *testing.T) {
	tbl, err := qdefect.NewTable(testSpecies())
	require.NoError(t, err)

	_, err = tbl.Parameters(context.Background(), mustState(t, "Cs", 10, 0, 0.5))
	assert.ErrorIs(t, err, qdefect.ErrNotFound)
}

// TestTable_InvalidState is rejected before any lookup.
func TestTable_InvalidState(t *testing.T) {
	tbl, err := qdefect.NewTable(testSpecies())
	require.NoError(t, err)

	_, err = tbl.Parameters(context.Background(), quantum.State{Species: "X", N: 2, L: 3, J: 3.5})
	assert.ErrorIs(t, err, quantum.ErrInvalidState)
}

// TestNewTable_Rejects covers malformed and duplicate records.
func TestNewTable_Rejects(t *testing.T) {
	sp := testSpecies()
	_, err := qdefect.NewTable(sp, sp)
	assert.ErrorIs(t, err, qdefect.ErrDuplicateRecord)

	sp = testSpecies()
	sp.ModelPotential = append(sp.ModelPotential, qdefect.ModelPotential{L: 0, Rc: 1})
	_, err = qdefect.NewTable(sp)
	assert.ErrorIs(t, err, qdefect.ErrDuplicateRecord)

	sp = testSpecies()
	sp.RydbergRitz = append(sp.RydbergRitz, qdefect.RydbergRitz{L: 0, J: 0.5})
	_, err = qdefect.NewTable(sp)
	assert.ErrorIs(t, err, qdefect.ErrDuplicateRecord)

	sp = testSpecies()
	sp.ModelPotential[0].Rc = 0
	_, err = qdefect.NewTable(sp)
	assert.ErrorIs(t, err, qdefect.ErrInvalidParameters)

	sp = testSpecies()
	sp.Ry = 0
	_, err = qdefect.NewTable(sp)
	assert.ErrorIs(t, err, qdefect.ErrInvalidParameters)
}

// TestTable_SpeciesIsACopy ensures callers cannot mutate the table.
func TestTable_SpeciesIsACopy(t *testing.T) {
	tbl, err := qdefect.NewTable(testSpecies())
	require.NoError(t, err)

	got := tbl.Species()
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].ModelPotential[0].L, "records are sorted by L")
	got[0].ModelPotential[0].A1 = 1e9

	p, err := tbl.Parameters(context.Background(), mustState(t, "X", 10, 0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.A1)
}

// TestDefaultTable_Rubidium resolves a Rydberg S state from the embedded data.
func TestDefaultTable_Rubidium(t *testing.T) {
	tbl, err := qdefect.DefaultTable()
	require.NoError(t, err)

	p, err := tbl.Parameters(context.Background(), mustState(t, "Rb", 30, 0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 37.0, p.Z)
	assert.Equal(t, 9.0760, p.Ac)
	assert.InDelta(t, -6.93e-4, p.Energy, 5e-6)

	h, err := tbl.Parameters(context.Background(), mustState(t, "H", 5, 2, 1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, h.Z)
	assert.Zero(t, h.Ac)
}
