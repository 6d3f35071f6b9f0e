package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "rankings"
	metricsSubsystem = "engine"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics records
// nothing, so tests and tools can run the engine without a registry.
type Metrics struct {
	records        *prometheus.CounterVec
	applications   *prometheus.CounterVec
	failures       *prometheus.CounterVec
	batchDuration  prometheus.Histogram
	checkpoint     prometheus.Gauge
	combinationFan prometheus.Histogram
}

// NewMetrics registers the engine collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	auto := promauto.With(reg)
	return &Metrics{
		records: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "change_records_total",
			Help:      "Change records processed, by outcome",
		}, []string{"outcome"}),
		applications: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "ranking_applications_total",
			Help:      "Per-combination delta applications, by result (applied or duplicate)",
		}, []string{"result"}),
		failures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "failures_total",
			Help:      "Failures by stage",
		}, []string{"stage"}),
		batchDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "batch_duration_seconds",
			Help:      "Time to process one change log batch",
			Buckets:   prometheus.DefBuckets,
		}),
		checkpoint: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "checkpoint_cursor",
			Help:      "Last change log sequence number checkpointed by the consumer",
		}),
		combinationFan: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "combinations_per_contribution",
			Help:      "Number of category combinations one contribution expands into",
			Buckets:   []float64{1, 2, 4, 8, 12, 16, 24, 32},
		}),
	}
}

func (m *Metrics) recordOutcome(o Outcome) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(string(o)).Inc()
}

func (m *Metrics) recordApplications(applied, duplicates int) {
	if m == nil {
		return
	}
	m.applications.WithLabelValues("applied").Add(float64(applied))
	m.applications.WithLabelValues("duplicate").Add(float64(duplicates))
}

func (m *Metrics) recordFailure(stage string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(stage).Inc()
}

func (m *Metrics) observeBatch(d time.Duration) {
	if m == nil {
		return
	}
	m.batchDuration.Observe(d.Seconds())
}

func (m *Metrics) setCheckpoint(cursor int64) {
	if m == nil {
		return
	}
	m.checkpoint.Set(float64(cursor))
}

func (m *Metrics) observeFanOut(n int) {
	if m == nil {
		return
	}
	m.combinationFan.Observe(float64(n))
}
