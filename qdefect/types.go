// SPDX-License-Identifier: MIT

package qdefect

import (
	"context"

	"github.com/katalvlaran/rydberg/quantum"
)

// RydbergInfinity is the Rydberg constant for infinite nuclear mass in cm⁻¹.
const RydbergInfinity = 109737.31568508

// jMatchTolerance is the slack for matching tabulated J values.
const jMatchTolerance = 1e-4

// Parameters is the read-only QuantumDefectParameters bundle for one state.
//
// Fields:
//   - Z              — nuclear charge seen by the valence electron at r → 0.
//   - A1, A2, A3, A4 — screening coefficients of the model potential.
//   - Ac             — static dipole polarizability of the core.
//   - Rc             — cutoff radius of the polarization term.
//   - Energy         — bound-state energy in atomic units (negative).
type Parameters struct {
	Z      float64
	A1     float64
	A2     float64
	A3     float64
	A4     float64
	Ac     float64
	Rc     float64
	Energy float64
}

// Provider returns the Parameters for a state.
// Implementations must be deterministic and safe for concurrent use.
type Provider interface {
	Parameters(ctx context.Context, st quantum.State) (Parameters, error)
}

// ModelPotential is one row of model-potential coefficients, valid for
// orbital angular momenta L and above until the next tabulated L.
type ModelPotential struct {
	L  int     `yaml:"l" toml:"l"`
	Ac float64 `yaml:"ac" toml:"ac"`
	Z  float64 `yaml:"z" toml:"z"`
	A1 float64 `yaml:"a1" toml:"a1"`
	A2 float64 `yaml:"a2" toml:"a2"`
	A3 float64 `yaml:"a3" toml:"a3"`
	A4 float64 `yaml:"a4" toml:"a4"`
	Rc float64 `yaml:"rc" toml:"rc"`
}

// RydbergRitz holds the quantum-defect expansion coefficients for (L, J).
type RydbergRitz struct {
	L  int     `yaml:"l" toml:"l"`
	J  float64 `yaml:"j" toml:"j"`
	D0 float64 `yaml:"d0" toml:"d0"`
	D2 float64 `yaml:"d2" toml:"d2"`
	D4 float64 `yaml:"d4" toml:"d4"`
	D6 float64 `yaml:"d6" toml:"d6"`
	D8 float64 `yaml:"d8" toml:"d8"`
}

// Species groups all records of one element.
// Ry is the species' mass-corrected Rydberg constant in cm⁻¹.
type Species struct {
	Name           string           `yaml:"name" toml:"name"`
	Ry             float64          `yaml:"ry" toml:"ry"`
	ModelPotential []ModelPotential `yaml:"model_potential" toml:"model_potential"`
	RydbergRitz    []RydbergRitz    `yaml:"rydberg_ritz" toml:"rydberg_ritz"`
}

// document is the on-disk layout shared by YAML and TOML tables.
type document struct {
	Species []Species `yaml:"species" toml:"species"`
}
