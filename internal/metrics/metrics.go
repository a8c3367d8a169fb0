package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"benefits-engine/internal/model"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benefits_evaluations_total",
			Help: "Total number of evaluation requests by outcome",
		},
		[]string{"outcome"},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "benefits_evaluation_duration_seconds",
			Help:    "Duration of evaluation requests in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"outcome"},
	)

	ProgramVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benefits_program_verdicts_total",
			Help: "Total number of program verdicts by program and verdict",
		},
		[]string{"program", "eligible"},
	)

	ValidationIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benefits_validation_issues_total",
			Help: "Total number of rejected profile fields by issue code",
		},
		[]string{"code"},
	)

	BatchesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "benefits_batches_in_flight",
			Help: "Number of batch evaluations currently running",
		},
	)
)

// ObserveEvaluation records one finished evaluation and its verdicts.
func ObserveEvaluation(outcome string, elapsed time.Duration, results []model.Result) {
	EvaluationsTotal.WithLabelValues(outcome).Inc()
	EvaluationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	for _, r := range results {
		ProgramVerdicts.WithLabelValues(r.Program, r.Eligible.String()).Inc()
	}
}
