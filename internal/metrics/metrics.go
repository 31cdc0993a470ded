// Package metrics defines the Prometheus collectors exported by the gateway
// on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "adpoint_gateway"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics groups every collector of the service. A nil *Metrics is valid and
// records nothing, which keeps constructors usable in tests.
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec

	Searches        *prometheus.CounterVec
	SearchDuration  prometheus.Histogram
	CustomersPerHit prometheus.Histogram
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of requests sent to the Adpoint API",
			},
			[]string{"endpoint", "outcome"},
		),
		UpstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of Adpoint API requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		Searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of customer searches by outcome",
			},
			[]string{"outcome"},
		),
		SearchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Duration of a whole customer search in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		CustomersPerHit: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_customers",
				Help:      "Number of customers returned by a successful search",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
	}
}

// NewRegistry returns a registry with the Go runtime and process collectors
// already registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ObserveUpstream records one Adpoint call.
func (m *Metrics) ObserveUpstream(endpoint string, seconds float64, err error) {
	if m == nil {
		return
	}

	m.UpstreamRequests.WithLabelValues(endpoint, outcome(err)).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(seconds)
}

// ObserveSearch records one customer search.
func (m *Metrics) ObserveSearch(seconds float64, customers int, err error) {
	if m == nil {
		return
	}

	m.Searches.WithLabelValues(outcome(err)).Inc()
	m.SearchDuration.Observe(seconds)
	if err == nil {
		m.CustomersPerHit.Observe(float64(customers))
	}
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
