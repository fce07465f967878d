// SPDX-License-Identifier: MIT

package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of rydberg_numerov_integrations_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the collectors Solve feeds.
type Metrics struct {
	integrations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	gridPoints   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. It panics if the names are already
// registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		integrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rydberg_numerov_integrations_total",
			Help: "Numerov integrations by species and outcome",
		}, []string{"species", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rydberg_numerov_integration_seconds",
			Help:    "Time to build and integrate one Numerov unit",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"species"}),
		gridPoints: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rydberg_numerov_grid_points",
			Help:    "Grid size of integrated Numerov units",
			Buckets: prometheus.ExponentialBuckets(100, 4, 6),
		}),
	}
}

// observe records one finished unit. points is 0 when no grid was built.
func (m *Metrics) observe(species string, elapsed time.Duration, points int, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.integrations.WithLabelValues(species, outcome).Inc()
	m.duration.WithLabelValues(species).Observe(elapsed.Seconds())
	if points > 0 {
		m.gridPoints.Observe(float64(points))
	}
}
