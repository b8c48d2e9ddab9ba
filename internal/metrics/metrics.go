// Package metrics exposes Prometheus counters and histograms for request
// volume and latency, scraped at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters and histograms the transport layer records
// against on every request.
type Metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New registers the service's metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coronavirus_api",
			Name:      "requests_total",
			Help:      "Total requests served, by route.",
		}, []string{"route"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "coronavirus_api",
			Name:      "request_duration_seconds",
			Help:      "Request latency in seconds, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveRequest records one completed request against route.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	m.requests.WithLabelValues(route).Inc()
	m.latency.WithLabelValues(route).Observe(d.Seconds())
}

// Handler returns the scrape endpoint for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
