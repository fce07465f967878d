// SPDX-License-Identifier: MIT

// Package qdefect supplies quantum-defect model parameters for a Rydberg
// state: the Marinescu model-potential coefficients (Z, a1..a4, ac, rc)
// and the bound-state energy obtained from the Rydberg–Ritz expansion of
// the quantum defect.
//
// The numerov solver only depends on the Provider interface. This package
// ships three interchangeable providers:
//
//   - Table — immutable in-memory data, decoded from YAML or TOML files
//     (LoadTable) or taken from the embedded defaults (DefaultTable).
//   - Store — an sqlite database (modernc.org/sqlite) with the
//     model_potential and rydberg_ritz tables.
//   - Cache — an LRU decorator in front of any other Provider.
//
// Resolution rules:
//
//	model potential : record with the largest L ≤ l of the species
//	Rydberg–Ritz    : exact (L, J) match; zero defect if l exceeds every
//	                  tabulated L of the species; ErrNotFound otherwise
//	δ               = d0 + d2/(n−d0)² + d4/(n−d0)⁴ + d6/(n−d0)⁶ + d8/(n−d0)⁸
//	energy          = −½·(Ry/Ry∞)/(n−δ)²   (atomic units)
//
// All providers are deterministic and safe for concurrent reads.
package qdefect
