package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "decisiongrid"
	engineSubsystem  = "engine"
)

// Metrics groups the engine's collectors.
type Metrics struct {
	calculations *prometheus.CounterVec
	cacheHits    *prometheus.CounterVec
	errors       *prometheus.CounterVec
	evaluation   prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: engineSubsystem,
				Name:      "node_calculations_total",
				Help:      "Results computed by nodes, by node kind",
			},
			[]string{"kind"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: engineSubsystem,
				Name:      "cache_hits_total",
				Help:      "Results served from a node cache, by node kind",
			},
			[]string{"kind"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: engineSubsystem,
				Name:      "errors_total",
				Help:      "Failed evaluations, by error category",
			},
			[]string{"category"},
		),
		evaluation: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: engineSubsystem,
				Name:      "evaluation_duration_seconds",
				Help:      "Wall time of one graph evaluation in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
	}
	reg.MustRegister(m.calculations, m.cacheHits, m.errors, m.evaluation)
	return m
}

// Calculated counts one computed result.
func (m *Metrics) Calculated(kind string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(kind).Inc()
}

// CacheHit counts one result served from a cache.
func (m *Metrics) CacheHit(kind string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(kind).Inc()
}

// Failed counts one failed evaluation.
func (m *Metrics) Failed(category string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(category).Inc()
}

// ObserveEvaluation records the duration of one evaluation.
func (m *Metrics) ObserveEvaluation(d time.Duration) {
	if m == nil {
		return
	}
	m.evaluation.Observe(d.Seconds())
}
