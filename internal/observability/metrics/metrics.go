package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes application-level instruments.
type Metrics struct {
	fetchFailures     *prometheus.CounterVec
	normalizedRecords *prometheus.CounterVec
	droppedCodes      prometheus.Counter
	staleSnapshots    prometheus.Counter
	paymentSubmits    *prometheus.CounterVec
}

// New registers the domain instruments on the default registry.
func New() *Metrics {
	return &Metrics{
		fetchFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portside_fetch_failures_total",
			Help: "Backend fetches that failed and were surfaced as empty collections.",
		}, []string{"collection"}),
		normalizedRecords: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portside_normalized_records_total",
			Help: "Raw preference records normalized, by collection.",
		}, []string{"collection"}),
		droppedCodes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portside_dropped_facility_codes_total",
			Help: "Legacy-path facility codes dropped for missing catalog entries.",
		}),
		staleSnapshots: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portside_stale_snapshots_discarded_total",
			Help: "Fetch results discarded because a newer snapshot was already published.",
		}),
		paymentSubmits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portside_payment_submissions_total",
			Help: "Booking submissions forwarded to the backend, by action and outcome.",
		}, []string{"action", "outcome"}),
	}
}

// RecordFetchFailure increments fetch failure counts.
func (m *Metrics) RecordFetchFailure(collection string) {
	if m == nil {
		return
	}
	m.fetchFailures.WithLabelValues(strings.TrimSpace(collection)).Inc()
}

// RecordNormalized adds normalized record counts.
func (m *Metrics) RecordNormalized(collection string, count int) {
	if m == nil || count <= 0 {
		return
	}
	m.normalizedRecords.WithLabelValues(strings.TrimSpace(collection)).Add(float64(count))
}

// RecordDroppedCodes adds dropped facility code counts.
func (m *Metrics) RecordDroppedCodes(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.droppedCodes.Add(float64(count))
}

// RecordStaleSnapshot increments discarded snapshot counts.
func (m *Metrics) RecordStaleSnapshot() {
	if m == nil {
		return
	}
	m.staleSnapshots.Inc()
}

// RecordPaymentSubmission increments submission counts.
func (m *Metrics) RecordPaymentSubmission(action, outcome string) {
	if m == nil {
		return
	}
	m.paymentSubmits.WithLabelValues(strings.TrimSpace(action), strings.TrimSpace(outcome)).Inc()
}
