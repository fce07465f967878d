// SPDX-License-Identifier: MIT

package batch

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/rydberg/numerov"
)

const (
	panicConcurrencyInvalid = "batch: WithConcurrency: k must be >= 1"
	panicLoggerNil          = "batch: WithLogger: nil logger"
	panicMetricsNil         = "batch: WithMetrics: nil metrics"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the effective configuration of one Solve call.
type Options struct {
	concurrency int          // runtime.GOMAXPROCS(0)
	logger      *slog.Logger // discard by default
	metrics     *Metrics     // nil: no metrics
	unit        []numerov.Option
}

// WithConcurrency bounds the number of units integrating at once.
func WithConcurrency(k int) Option {
	if k < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = k }
}

// WithLogger receives unit failures (Warn) and is handed to every unit.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics records every integration into m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic(panicMetricsNil)
	}

	return func(o *Options) { o.metrics = m }
}

// WithStep sets the grid spacing of every unit (see numerov.WithStep).
func WithStep(dx float64) Option {
	step := numerov.WithStep(dx)

	return func(o *Options) { o.unit = append(o.unit, step) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
