// Package metrics provides Prometheus metrics for conversion runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// Metrics holds the Prometheus collectors for one batch run.
// Each Metrics owns its registry so concurrent runs never collide.
type Metrics struct {
	registry *prometheus.Registry

	RecordsTotal       *prometheus.CounterVec
	ConversionDuration *prometheus.HistogramVec
	RecordsInFlight    prometheus.Gauge
	PropertiesEmitted  *prometheus.CounterVec
	BatchDuration      prometheus.Gauge
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RecordsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soso_records_total",
				Help: "Total number of records processed, by strategy and status",
			},
			[]string{"strategy", "status"},
		),
		ConversionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "soso_conversion_duration_seconds",
				Help:    "Duration of single record conversions in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"strategy"},
		),
		RecordsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "soso_records_in_flight",
				Help: "Number of records currently being converted",
			},
		),
		PropertiesEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soso_properties_emitted_total",
				Help: "Total number of JSON-LD properties written, by property",
			},
			[]string{"property"},
		),
		BatchDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "soso_batch_duration_seconds",
				Help: "Wall-clock duration of the last batch in seconds",
			},
		),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordResult records one finished record.
func (m *Metrics) RecordResult(strategy string, result soso.RecordResult) {
	m.RecordsTotal.WithLabelValues(strategy, string(result.Status)).Inc()
	if result.Status == soso.StatusConverted {
		m.ConversionDuration.WithLabelValues(strategy).Observe(result.Duration.Seconds())
	}
}

// RecordProperties counts the properties present in a converted document.
func (m *Metrics) RecordProperties(doc map[string]any) {
	for property := range doc {
		m.PropertiesEmitted.WithLabelValues(property).Inc()
	}
}

// RecordBatch records the batch wall-clock duration.
func (m *Metrics) RecordBatch(duration time.Duration) {
	m.BatchDuration.Set(duration.Seconds())
}

// WriteToTextfile writes all metrics in the node_exporter textfile format.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
