package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricCRUDOperation  = "crud.operation"
	MetricDemoSeeded     = "demo.seeded"
	MetricEngineRun      = "engine.run"
	MetricSnapshotSize   = "snapshot.size"
	MetricOverBudgetSize = "budgets.over"
)

type PrometheusMetrics struct {
	crudOperations  *prometheus.CounterVec
	demoSeeded      *prometheus.CounterVec
	engineRuns      *prometheus.CounterVec
	engineDuration  *prometheus.HistogramVec
	snapshotRecords *prometheus.GaugeVec
	overBudget      prometheus.Gauge
}

// NewPrometheusMetrics registers the finance metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

func NewPrometheusMetricsWith(registerer prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		crudOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_crud_operations_total",
				Help: "Total number of CRUD operations by entity, operation and outcome",
			},
			[]string{"entity", "operation", "status"},
		),
		demoSeeded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_demo_records_seeded_total",
				Help: "Total number of demo records written by the seeder",
			},
			[]string{"entity"},
		),
		engineRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_engine_runs_total",
				Help: "Total number of engine runs by operation and whether any record matched",
			},
			[]string{"operation", "result"},
		),
		engineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_engine_duration_seconds",
				Help:    "Time spent loading a snapshot and running the aggregation engine",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation"},
		),
		snapshotRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finance_snapshot_records",
				Help: "Number of records in the most recent engine snapshot",
			},
			[]string{"entity"},
		),
		overBudget: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "finance_budgets_over_limit",
				Help: "Number of budgets whose spending exceeds the budgeted amount",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricCRUDOperation:
		status := tags["status"]
		if status == "" {
			status = "success"
		}
		m.crudOperations.WithLabelValues(tags["entity"], tags["operation"], status).Inc()
	case MetricDemoSeeded:
		if entity := tags["entity"]; entity != "" {
			m.demoSeeded.WithLabelValues(entity).Inc()
		}
	case MetricEngineRun:
		result := tags["result"]
		if result == "" {
			result = "matched"
		}
		m.engineRuns.WithLabelValues(tags["operation"], result).Inc()
	}
}

// RecordProcessingTime observes engine runs. name is the engine operation.
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.engineDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSnapshotSize:
		if entity := tags["entity"]; entity != "" {
			m.snapshotRecords.WithLabelValues(entity).Set(value)
		}
	case MetricOverBudgetSize:
		m.overBudget.Set(value)
	case MetricDemoSeeded:
		if entity := tags["entity"]; entity != "" {
			m.demoSeeded.WithLabelValues(entity).Add(value)
		}
	}
}
