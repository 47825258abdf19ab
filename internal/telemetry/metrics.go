package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks backend traffic on a private registry so several
// servers can run in one process.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rateLimited prometheus.Counter
	records     *prometheus.GaugeVec
}

// NewMetrics registers the stockr backend collectors.
func NewMetrics() *Metrics {
	m := Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stockr",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stockr",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stockr",
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "stockr",
			Name:      "store_records",
			Help:      "Records held by the store, by collection.",
		}, []string{"collection"}),
	}
	m.registry.MustRegister(m.requests, m.latency, m.rateLimited, m.records)

	return &m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, code int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// TrackRateLimited counts a throttled request.
func (m *Metrics) TrackRateLimited() {
	m.rateLimited.Inc()
}

// SetRecords sets the size of a collection.
func (m *Metrics) SetRecords(collection string, n int) {
	m.records.WithLabelValues(collection).Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
