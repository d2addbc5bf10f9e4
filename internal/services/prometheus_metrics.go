package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsClassified *prometheus.CounterVec
	classificationFailures *prometheus.CounterVec
	classificationDuration prometheus.Histogram
	transactionsRelabeled  prometheus.Counter
	transactionsDeleted    prometheus.Counter
	modelUpdates           *prometheus.CounterVec
	modelUpdateDuration    prometheus.Histogram
	knownLabels            prometheus.Gauge
	circuitBreakerTrips    *prometheus.CounterVec
}

// NewPrometheusMetrics registers the pipeline metrics on reg. A nil reg uses
// the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsClassified: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_classified_total",
				Help: "Total number of transactions classified and stored",
			},
			[]string{"category", "model"},
		),
		classificationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_operation_failures_total",
				Help: "Total number of failed transaction operations",
			},
			[]string{"operation", "reason"},
		),
		classificationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_classification_duration_milliseconds",
				Help:    "Time to classify and store a transaction in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsRelabeled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_relabeled_total",
				Help: "Total number of transactions corrected by their owner",
			},
		),
		transactionsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		modelUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "classifier_model_updates_total",
				Help: "Total number of online model updates",
			},
			[]string{"status"},
		),
		modelUpdateDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "classifier_model_update_duration_milliseconds",
				Help:    "Online model update duration including persistence, in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		knownLabels: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "classifier_known_labels",
				Help: "Number of labels known to the served model",
			},
		),
		circuitBreakerTrips: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "circuit_breaker_trips_total",
				Help: "Total number of times a circuit breaker opened",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.classified":
		m.transactionsClassified.WithLabelValues(tags["category"], tags["model"]).Inc()
	case "transaction.failed":
		m.classificationFailures.WithLabelValues(tags["operation"], tags["reason"]).Inc()
	case "transaction.relabeled":
		m.transactionsRelabeled.Inc()
	case "transaction.deleted":
		m.transactionsDeleted.Inc()
	case "model.update.success":
		m.modelUpdates.WithLabelValues("success").Inc()
	case "model.update.failed":
		m.modelUpdates.WithLabelValues("failed_" + tags["reason"]).Inc()
	case "circuit_breaker.open":
		m.circuitBreakerTrips.WithLabelValues(tags["service"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.classify":
		m.classificationDuration.Observe(float64(duration.Milliseconds()))
	case "model.update":
		m.modelUpdateDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "model.known_labels":
		m.knownLabels.Set(value)
	}
}
