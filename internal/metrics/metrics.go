// Package metrics exposes Prometheus counters and histograms for the
// feasibility engine, scraped via promhttp at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal counts evaluations run by the feasibility-check
	// HTTP handler (cache hits are not counted).
	EvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_feasibility_evaluations_total",
		Help: "Total number of feasibility evaluations performed.",
	})

	// EvaluationDuration observes the latency of those same evaluations.
	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roster_feasibility_evaluation_duration_seconds",
		Help:    "Duration of a single feasibility evaluation.",
		Buckets: prometheus.DefBuckets,
	})

	// ViolationsTotal counts violations emitted, partitioned by
	// constraint id and effective severity.
	ViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_feasibility_violations_total",
		Help: "Total violations emitted, by constraint and severity.",
	}, []string{"constraint_id", "severity"})
)
