// SPDX-License-Identifier: MIT

package numerov

import (
	"log/slog"
	"math"
)

const (
	panicStepInvalid = "numerov: WithStep: dx must be finite and > 0"
	panicLoggerNil   = "numerov: WithLogger: nil logger"
)

// Option mutates internal options. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options is the effective configuration of a Numerov unit.
type Options struct {
	dx     float64      // DefaultStep
	logger *slog.Logger // discard by default
}

// WithStep overrides the grid spacing in x = √r.
// Units meant to be combined by RadialElement must share the same dx.
func WithStep(dx float64) Option {
	if !(dx > 0) || math.IsInf(dx, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.dx = dx }
}

// WithLogger routes Debug diagnostics (grid shape, norm) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{dx: DefaultStep, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
