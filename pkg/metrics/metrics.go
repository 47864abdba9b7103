// Package metrics provides Prometheus instrumentation for the skill backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// DISPATCH METRICS
// =============================================================================

var (
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_dispatch_total",
			Help: "Total number of dispatched skill requests",
		},
		[]string{"request_type", "handler", "outcome"}, // outcome: handled, recovered, unhandled
	)

	dispatchDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skill_dispatch_duration_seconds",
			Help:    "Skill request dispatch duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"request_type"},
	)
)

// =============================================================================
// TIMER API METRICS
// =============================================================================

var (
	timerAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_timer_api_calls_total",
			Help: "Total number of timer management API calls",
		},
		[]string{"operation", "status"}, // status: HTTP status code or "transport_error"
	)

	timerAPIDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skill_timer_api_duration_seconds",
			Help:    "Timer management API call duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	fanoutResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_timer_fanout_results_total",
			Help: "Per-timer results of pause-all and resume-all fan-outs",
		},
		[]string{"operation", "result"}, // result: ok, failed
	)
)

// =============================================================================
// SESSION METRICS
// =============================================================================

var activeSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "skill_active_sessions",
		Help: "Number of sessions currently held in the in-memory session store",
	},
)

// =============================================================================
// PUBLIC API
// =============================================================================

// RecordDispatch records one dispatched envelope.
func RecordDispatch(requestType, handler, outcome string, durationSeconds float64) {
	dispatchTotal.WithLabelValues(requestType, handler, outcome).Inc()
	dispatchDurationSeconds.WithLabelValues(requestType).Observe(durationSeconds)
}

// RecordTimerAPICall records one call to the timer management API.
func RecordTimerAPICall(operation, status string, durationSeconds float64) {
	timerAPICallsTotal.WithLabelValues(operation, status).Inc()
	timerAPIDurationSeconds.WithLabelValues(operation).Observe(durationSeconds)
}

// RecordFanoutResult records the result of one per-timer call in a fan-out.
func RecordFanoutResult(operation string, ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	fanoutResultsTotal.WithLabelValues(operation, result).Inc()
}

// SetActiveSessions sets the session gauge.
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}
