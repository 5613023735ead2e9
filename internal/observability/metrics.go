// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stagehand Contributors

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for item dispatch metrics.
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusPanic    = "panic"
	StatusNotFound = "not_found"
)

// Session end outcomes.
const (
	OutcomeCompleted  = "completed"
	OutcomeStopped    = "stopped"
	OutcomeSkipped    = "skipped"
	OutcomeSuperseded = "superseded"
)

// ItemDispatches counts dispatched timeline items.
// Use RegisterMetrics to register this with a Prometheus registry.
var ItemDispatches = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stagehand_item_dispatches_total",
		Help: "Total number of timeline item dispatches",
	},
	[]string{"kind", "action", "status"},
)

// SessionsEnded counts playback sessions by how they ended.
// Use RegisterMetrics to register this with a Prometheus registry.
var SessionsEnded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stagehand_sessions_ended_total",
		Help: "Total number of playback sessions by end outcome",
	},
	[]string{"outcome"},
)

// AdvanceDuration is the histogram of scheduler tick durations.
// Use RegisterMetrics to register this with a Prometheus registry.
var AdvanceDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "stagehand_advance_duration_seconds",
		Help:    "Wall-clock duration of scheduler advance calls",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	},
)

// RegisterMetrics registers playback metrics with the given Prometheus
// registry. Call once at startup. Panics if registration fails (following
// prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(ItemDispatches)
	reg.MustRegister(SessionsEnded)
	reg.MustRegister(AdvanceDuration)
}

// RecordItemDispatch increments the dispatch counter.
func RecordItemDispatch(kind, action, status string) {
	ItemDispatches.WithLabelValues(kind, action, status).Inc()
}

// RecordSessionEnd increments the session end counter.
func RecordSessionEnd(outcome string) {
	SessionsEnded.WithLabelValues(outcome).Inc()
}

// RecordAdvanceDuration records the wall-clock cost of one advance call.
func RecordAdvanceDuration(d time.Duration) {
	AdvanceDuration.Observe(d.Seconds())
}
