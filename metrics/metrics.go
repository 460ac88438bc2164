// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for encoder runs.
//
// Instruments are registered on a caller-supplied Registerer so several
// encoders (and tests) can coexist. Every method is safe on a nil *Metrics,
// which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for TransformsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics groups the encoder instruments.
type Metrics struct {
	// CellsTotal counts computed matrix cells per column.
	CellsTotal *prometheus.CounterVec

	// ColumnDuration tracks per-column matrix construction latency.
	ColumnDuration *prometheus.HistogramVec

	// TransformDuration tracks end-to-end Transform latency.
	TransformDuration prometheus.Histogram

	// TransformsTotal counts Transform calls by outcome.
	TransformsTotal *prometheus.CounterVec

	// ReducerStress is the stress of the latest reduction per reducer.
	ReducerStress *prometheus.GaugeVec

	// ReducerIterations is the iteration count of the latest reduction per reducer.
	ReducerIterations *prometheus.GaugeVec
}

// New registers the encoder instruments on reg (prometheus.DefaultRegisterer
// when nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		CellsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ctxenc_matrix_cells_total",
			Help: "Total computed matrix cells by column",
		}, []string{"column"}),
		ColumnDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ctxenc_column_duration_seconds",
			Help:    "Per-column matrix construction duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"column", "measure"}),
		TransformDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ctxenc_transform_duration_seconds",
			Help:    "Transform duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		TransformsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ctxenc_transforms_total",
			Help: "Total Transform calls by outcome",
		}, []string{"outcome"}),
		ReducerStress: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ctxenc_reducer_stress",
			Help: "Stress of the latest reduction",
		}, []string{"reducer"}),
		ReducerIterations: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ctxenc_reducer_iterations",
			Help: "Iterations of the latest reduction",
		}, []string{"reducer"}),
	}
}

// ObserveColumn records one finished column matrix of n×n cells.
func (m *Metrics) ObserveColumn(column, measure string, n int, took time.Duration) {
	if m == nil {
		return
	}
	m.CellsTotal.WithLabelValues(column).Add(float64(n * n))
	m.ColumnDuration.WithLabelValues(column, measure).Observe(took.Seconds())
}

// ObserveTransform records one Transform call.
func (m *Metrics) ObserveTransform(err error, took time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.TransformsTotal.WithLabelValues(outcome).Inc()
	m.TransformDuration.Observe(took.Seconds())
}

// ObserveReducer records the diagnostics of one reduction; iterations < 0
// leaves the iterations gauge untouched.
func (m *Metrics) ObserveReducer(reducer string, stress float64, iterations int) {
	if m == nil {
		return
	}
	m.ReducerStress.WithLabelValues(reducer).Set(stress)
	if iterations >= 0 {
		m.ReducerIterations.WithLabelValues(reducer).Set(float64(iterations))
	}
}
