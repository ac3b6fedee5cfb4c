// Package metrics provides Prometheus metrics for the mostactive tool.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the tool.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         *prometheus.Registry

	// Ingestion
	recordsIngested prometheus.Counter
	recordsSkipped  prometheus.Counter
	ingestErrors    *prometheus.CounterVec
	ingestDuration  prometheus.Histogram

	// Store
	trackedDays        prometheus.Gauge
	trackedIdentifiers prometheus.Gauge
	queries            prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Initialize global metrics on a private registry so Go runtime collectors stay out.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mostactive",
		subsystem:        "tracker",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.recordsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_ingested_total",
		Help:        "Total number of log rows recorded into the tracker",
		ConstLabels: labels,
	})

	m.recordsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_skipped_total",
		Help:        "Total number of malformed rows skipped in lenient mode",
		ConstLabels: labels,
	})

	m.ingestErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "ingest_errors_total",
			Help:        "Ingestion errors by kind",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.ingestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "ingest_duration_seconds",
		Help:        "Wall time spent ingesting one log source",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	})

	m.trackedDays = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "tracked_days",
		Help:        "Number of distinct day keys held by the tracker",
		ConstLabels: labels,
	})

	m.trackedIdentifiers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "tracked_identifiers",
		Help:        "Number of distinct (day, identifier) pairs held by the tracker",
		ConstLabels: labels,
	})

	m.queries = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "queries_total",
		Help:        "Total number of most-active lookups",
		ConstLabels: labels,
	})
}

// Registry returns the manager's registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the manager's metrics in textfile-collector format.
func (m *Manager) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteTextfile, path, err)
	}
	return nil
}

// RecordIngested counts one recorded row.
func RecordIngested() {
	globalManager.recordsIngested.Inc()
}

// RecordSkipped counts one skipped malformed row.
func RecordSkipped() {
	globalManager.recordsSkipped.Inc()
}

// RecordIngestError counts an ingestion failure of the given kind.
func RecordIngestError(kind string) {
	globalManager.ingestErrors.WithLabelValues(kind).Inc()
}

// RecordIngestDuration observes the duration of one ingestion in seconds.
func RecordIngestDuration(seconds float64) {
	globalManager.ingestDuration.Observe(seconds)
}

// UpdateTrackedDays sets the number of distinct days.
func UpdateTrackedDays(count int) {
	globalManager.trackedDays.Set(float64(count))
}

// UpdateTrackedIdentifiers sets the number of distinct (day, identifier) pairs.
func UpdateTrackedIdentifiers(count int) {
	globalManager.trackedIdentifiers.Set(float64(count))
}

// RecordQuery counts one most-active lookup.
func RecordQuery() {
	globalManager.queries.Inc()
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return globalManager.registry
}

// WriteTextfile writes the global metrics to path.
func WriteTextfile(path string) error {
	return globalManager.WriteTextfile(path)
}
