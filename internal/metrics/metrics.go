// Package metrics exposes Prometheus metrics of the curation pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "curator"

// Outcome labels.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Metrics holds all pipeline collectors. A nil *Metrics is valid and records
// nothing, which keeps service tests free of registry setup.
type Metrics struct {
	Transitions      *prometheus.CounterVec
	BulkItems        *prometheus.CounterVec
	BulkDuration     *prometheus.HistogramVec
	SinkFailures     prometheus.Counter
	DuplicateMatches prometheus.Counter
	DuplicateScanned prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Record workflow operations by action and result",
		}, []string{"action", "result"}),

		BulkItems: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_items_total",
			Help:      "Items processed by bulk operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		BulkDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bulk_duration_seconds",
			Help:      "Wall time of one bulk operation",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"operation"}),

		SinkFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_sink_failures_total",
			Help:      "Publishes refused by the catalog sink",
		}),

		DuplicateMatches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_matches_total",
			Help:      "Duplicate pairs reported by the detector",
		}),

		DuplicateScanned: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duplicate_working_set_size",
			Help:      "Records compared per duplicate scan",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 5000, 20000},
		}),

		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return ResultFailed
	}
	return ResultOK
}

// Transition counts one workflow operation.
func (m *Metrics) Transition(action string, err error) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(action, result(err)).Inc()
}

// BulkItem counts one item of a bulk operation.
func (m *Metrics) BulkItem(operation string, err error) {
	if m == nil {
		return
	}
	m.BulkItems.WithLabelValues(operation, result(err)).Inc()
}

// BulkFinished observes the duration of a bulk operation.
func (m *Metrics) BulkFinished(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.BulkDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// SinkFailure counts a refused publish.
func (m *Metrics) SinkFailure() {
	if m == nil {
		return
	}
	m.SinkFailures.Inc()
}

// DuplicateScan records the size of a scan and how many matches it reported.
func (m *Metrics) DuplicateScan(scanned, matches int) {
	if m == nil {
		return
	}
	m.DuplicateScanned.Observe(float64(scanned))
	m.DuplicateMatches.Add(float64(matches))
}
