// SPDX-License-Identifier: MIT

package qdefect

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/rydberg/quantum"
)

// Table is an immutable in-memory Provider.
// Construct with NewTable, LoadTable, DecodeTable or DefaultTable.
type Table struct {
	species map[string]Species // records sorted by L (then J)
}

var _ Provider = (*Table)(nil)

// NewTable validates the species blocks and freezes them into a Table.
// The input slices are copied; later changes by the caller are not seen.
//
// Errors:
//   - ErrInvalidParameters for malformed records.
//   - ErrDuplicateRecord for repeated species or record keys.
func NewTable(species ...Species) (*Table, error) {
	t := &Table{species: make(map[string]Species, len(species))}
	for _, sp := range species {
		if err := validateSpecies(sp); err != nil {
			return nil, err
		}
		if _, dup := t.species[sp.Name]; dup {
			return nil, fmt.Errorf("species %s: %w", sp.Name, ErrDuplicateRecord)
		}
		cp := Species{
			Name:           sp.Name,
			Ry:             sp.Ry,
			ModelPotential: slices.Clone(sp.ModelPotential),
			RydbergRitz:    slices.Clone(sp.RydbergRitz),
		}
		slices.SortFunc(cp.ModelPotential, func(a, b ModelPotential) int { return a.L - b.L })
		slices.SortFunc(cp.RydbergRitz, func(a, b RydbergRitz) int {
			if a.L != b.L {
				return a.L - b.L
			}
			switch {
			case a.J < b.J:
				return -1
			case a.J > b.J:
				return 1
			}

			return 0
		})
		t.species[sp.Name] = cp
	}

	return t, nil
}

// Species returns deep copies of all species blocks ordered by name.
func (t *Table) Species() []Species {
	names := make([]string, 0, len(t.species))
	for name := range t.species {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)

	out := make([]Species, 0, len(names))
	for _, name := range names {
		sp := t.species[name]
		out = append(out, Species{
			Name:           sp.Name,
			Ry:             sp.Ry,
			ModelPotential: slices.Clone(sp.ModelPotential),
			RydbergRitz:    slices.Clone(sp.RydbergRitz),
		})
	}

	return out
}

// Parameters implements Provider.
func (t *Table) Parameters(_ context.Context, st quantum.State) (Parameters, error) {
	if err := st.Validate(); err != nil {
		return Parameters{}, err
	}
	sp, ok := t.species[st.Species]
	if !ok {
		return Parameters{}, fmt.Errorf("species %q: %w", st.Species, ErrNotFound)
	}

	// Largest tabulated L not above l.
	mpIdx := -1
	for i, mp := range sp.ModelPotential {
		if mp.L <= st.L {
			mpIdx = i
		}
	}
	if mpIdx < 0 {
		return Parameters{}, fmt.Errorf("%s: model potential: %w", st, ErrNotFound)
	}

	rr, err := sp.rydbergRitz(st)
	if err != nil {
		return Parameters{}, err
	}

	return resolve(st, sp.Ry, sp.ModelPotential[mpIdx], rr)
}

// rydbergRitz picks the exact (L, J) record, or nil for a hydrogenic level.
func (sp Species) rydbergRitz(st quantum.State) (*RydbergRitz, error) {
	maxL := -1
	for i := range sp.RydbergRitz {
		rr := &sp.RydbergRitz[i]
		if rr.L == st.L && math.Abs(rr.J-st.J) < jMatchTolerance {
			found := *rr

			return &found, nil
		}
		maxL = max(maxL, rr.L)
	}
	if st.L > maxL {
		return nil, nil
	}

	return nil, fmt.Errorf("%s: rydberg-ritz: %w", st, ErrNotFound)
}
