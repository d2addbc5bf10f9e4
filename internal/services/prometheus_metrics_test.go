package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gathered returns the value of every sample keyed by metric name and label
// values, e.g. "classifier_model_updates_total{success}".
func gathered(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := family.GetName() + "{"
			for i, label := range metric.GetLabel() {
				if i > 0 {
					key += ","
				}
				key += label.GetValue()
			}
			key += "}"

			switch {
			case metric.GetCounter() != nil:
				values[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[key] = metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				values[key] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	return values
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.IncrementCounter("transaction.classified", map[string]string{"category": "Expenses", "model": "available"})
	m.IncrementCounter("transaction.classified", map[string]string{"category": "Expenses", "model": "available"})
	m.IncrementCounter("transaction.failed", map[string]string{"operation": "create", "reason": "persistence"})
	m.IncrementCounter("transaction.relabeled", nil)
	m.IncrementCounter("model.update.success", nil)
	m.IncrementCounter("model.update.failed", map[string]string{"reason": "unavailable"})
	m.IncrementCounter("circuit_breaker.open", map[string]string{"service": "record_store"})
	m.IncrementCounter("circuit_breaker.open", map[string]string{"service": "record_store"})
	m.IncrementCounter("unknown.metric", nil)

	values := gathered(t, reg)

	assert.Equal(t, 2.0, values["transactions_classified_total{Expenses,available}"])
	assert.Equal(t, 1.0, values["transaction_operation_failures_total{create,persistence}"])
	assert.Equal(t, 1.0, values["transactions_relabeled_total{}"])
	assert.Equal(t, 1.0, values["classifier_model_updates_total{success}"])
	assert.Equal(t, 1.0, values["classifier_model_updates_total{failed_unavailable}"])
	assert.Equal(t, 2.0, values["circuit_breaker_trips_total{record_store}"])
}

func TestPrometheusMetrics_DurationsAndGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.RecordProcessingTime("transaction.classify", 3*time.Millisecond)
	m.RecordProcessingTime("model.update", 12*time.Millisecond)
	m.RecordProcessingTime("model.update", 8*time.Millisecond)
	m.RecordGauge("model.known_labels", 21, nil)

	values := gathered(t, reg)

	assert.Equal(t, 1.0, values["transaction_classification_duration_milliseconds{}"])
	assert.Equal(t, 2.0, values["classifier_model_update_duration_milliseconds{}"])
	assert.Equal(t, 21.0, values["classifier_known_labels{}"])
}

func TestPrometheusMetrics_SeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
