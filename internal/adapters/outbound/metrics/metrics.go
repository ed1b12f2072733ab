// Package metrics exports scoring run metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/archscore/archscore/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "archscore"

// Observer implements domain.RunObserver with Prometheus collectors.
type Observer struct {
	runsTotal     *prometheus.CounterVec
	runSeconds    prometheus.Histogram
	excludedTotal *prometheus.CounterVec
	topScore      prometheus.Histogram
	eligible      prometheus.Histogram
}

// New creates an Observer with unregistered collectors.
func New() *Observer {
	return &Observer{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Total number of scoring runs, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		runSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_seconds",
				Help:      "Scoring run latency in seconds.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		excludedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exclusions_total",
				Help:      "Catalog entries excluded by a hard constraint.",
			},
			[]string{"constraint"},
		),
		topScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "top_score",
				Help:      "Likelihood score of the primary recommendation.",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		eligible: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "eligible_architectures",
				Help:      "Eligible architectures per successful run.",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
	}
}

// Register attaches the collectors to reg. Collectors that are already
// registered are skipped.
func (o *Observer) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		o.runsTotal,
		o.runSeconds,
		o.excludedTotal,
		o.topScore,
		o.eligible,
	}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveRun records one scoring call.
func (o *Observer) ObserveRun(outcome string, duration time.Duration, result *domain.ScoringResult) {
	label := outcome
	if label != domain.OutcomeError {
		label = domain.OutcomeSuccess
	}
	o.runsTotal.WithLabelValues(label).Inc()
	if duration < 0 {
		duration = 0
	}
	o.runSeconds.Observe(duration.Seconds())

	if result == nil {
		return
	}
	for _, x := range result.Excluded {
		o.excludedTotal.WithLabelValues(x.Constraint).Inc()
	}
	o.eligible.Observe(float64(result.EligibleCount))
	if len(result.Recommendations) > 0 {
		o.topScore.Observe(float64(result.TopScore()))
	}
}
