// Package metrics exposes Prometheus instrumentation for the sourcing assistant.
// Every method is safe to call on a nil *SearchMetrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search outcome label values.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected"
)

// SearchMetrics records search and quote activity.
type SearchMetrics struct {
	searches     *prometheus.CounterVec
	duration     prometheus.Histogram
	stale        prometheus.Counter
	offers       *prometheus.CounterVec
	packageItems prometheus.Gauge
}

// NewSearchMetrics registers the sourcing metrics on the provided registerer.
// A nil registerer yields a recorder that discards everything.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	if reg == nil {
		return &SearchMetrics{}
	}
	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sourcing_searches_total",
		Help: "Search requests by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sourcing_search_duration_seconds",
		Help:    "Duration of calls to the search collaborator in seconds.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 90},
	})
	stale := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sourcing_stale_responses_total",
		Help: "Search replies discarded because a newer search was dispatched.",
	})
	offers := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sourcing_offers_returned_total",
		Help: "Offers returned by the search collaborator per category.",
	}, []string{"category"})
	packageItems := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "sourcing_package_items",
		Help: "Current number of items in the quote being assembled.",
	})
	reg.MustRegister(searches, duration, stale, offers, packageItems)
	return &SearchMetrics{
		searches:     searches,
		duration:     duration,
		stale:        stale,
		offers:       offers,
		packageItems: packageItems,
	}
}

// IncSearch increments the search counter for the given outcome.
func (m *SearchMetrics) IncSearch(outcome string) {
	if m == nil || m.searches == nil {
		return
	}
	m.searches.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveDuration records how long a collaborator call took.
func (m *SearchMetrics) ObserveDuration(d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}

// IncStale counts a discarded stale reply.
func (m *SearchMetrics) IncStale() {
	if m == nil || m.stale == nil {
		return
	}
	m.stale.Inc()
}

// AddOffers adds n returned offers for a category.
func (m *SearchMetrics) AddOffers(category string, n int) {
	if m == nil || m.offers == nil || n <= 0 {
		return
	}
	m.offers.WithLabelValues(normalizeLabel(category)).Add(float64(n))
}

// SetPackageItems sets the current quote size.
func (m *SearchMetrics) SetPackageItems(n int) {
	if m == nil || m.packageItems == nil {
		return
	}
	m.packageItems.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
