// SPDX-License-Identifier: MIT

package qdefect_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/rydberg/qdefect"
)

// BenchmarkTable_Parameters measures an in-memory lookup.
func BenchmarkTable_Parameters(b *testing.B) {
	tbl, err := qdefect.DefaultTable()
	if err != nil {
		b.Fatalf("DefaultTable failed: %v", err)
	}
	st := mustState(b, "Rb", 50, 2, 2.5)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tbl.Parameters(ctx, st); err != nil {
			b.Fatalf("Parameters failed: %v", err)
		}
	}
}

// BenchmarkCache_Parameters measures a warm LRU hit.
func BenchmarkCache_Parameters(b *testing.B) {
	tbl, err := qdefect.DefaultTable()
	if err != nil {
		b.Fatalf("DefaultTable failed: %v", err)
	}
	cache, err := qdefect.NewCache(tbl, 0)
	if err != nil {
		b.Fatalf("NewCache failed: %v", err)
	}
	st := mustState(b, "Rb", 50, 2, 2.5)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cache.Parameters(ctx, st); err != nil {
			b.Fatalf("Parameters failed: %v", err)
		}
	}
}
