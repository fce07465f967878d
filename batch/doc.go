// SPDX-License-Identifier: MIT

// Package batch runs many Numerov units side by side.
//
// Each state gets its own numerov.Numerov[float64]; units share only the
// read-only parameter provider, so they run on a bounded errgroup without
// further locking. Results keep the order of the input states.
//
// The first failing unit cancels the rest and Solve returns its error,
// prefixed with the failing state's label.
//
// Optional Prometheus metrics (see NewMetrics) count integrations per
// species and outcome and record their duration and grid size.
package batch
