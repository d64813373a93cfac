package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LookupMetrics holds Prometheus metrics for the PIN code lookup chain.
// All provider-level metrics carry a provider label so dashboards can tell
// a flaky mirror apart from the reference API.
type LookupMetrics struct {
	// Provider calls
	Attempts *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec

	// Chain outcomes
	Resolved  *prometheus.CounterVec
	Exhausted prometheus.Counter

	// Validation outcomes
	ValidationResults *prometheus.CounterVec
}

// NewLookupMetrics creates and registers all lookup metrics.
func NewLookupMetrics(namespace string) *LookupMetrics {
	if namespace == "" {
		namespace = "addressd"
	}

	subsystem := "pincode"

	return &LookupMetrics{
		Attempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "lookup_attempts_total",
				Help:      "Total lookup calls issued to a provider",
			},
			[]string{"provider"},
		),
		Failures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "lookup_failures_total",
				Help:      "Total provider calls that failed or returned an unusable response",
			},
			[]string{"provider", "reason"}, // reason: error, timeout, unrecognized
		),
		Duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "lookup_duration_seconds",
				Help:      "Duration of individual provider calls",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"provider"},
		),
		Resolved: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chain_resolved_total",
				Help:      "Total chain lookups resolved, by winning provider",
			},
			[]string{"provider"},
		),
		Exhausted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "chain_exhausted_total",
				Help:      "Total chain lookups where every provider failed",
			},
		),
		ValidationResults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "validation_results_total",
				Help:      "Total PIN validations by outcome",
			},
			[]string{"outcome"}, // outcome: valid, invalid, fallback
		),
	}
}

// Lookup is the global lookup metrics instance.
// Nil until InitLookupMetrics is called, so library users who never wire
// Prometheus pay nothing.
var Lookup *LookupMetrics

// InitLookupMetrics initializes the global lookup metrics instance.
func InitLookupMetrics(namespace string) *LookupMetrics {
	Lookup = NewLookupMetrics(namespace)
	return Lookup
}
