package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tax_api"

// Metrics owns a private Prometheus registry and the service's collectors.
// It satisfies the outbound HTTP client's MetricsCollector and the provider
// gateway's ResolutionRecorder.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec
	resolutions      *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
}

// New creates the collectors and registers them with a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Inbound HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound tax provider requests by status.",
		}, []string{"method", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Outbound tax provider latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_request_errors_total",
			Help:      "Outbound tax provider transport errors.",
		}, []string{"method"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_provider_resolutions_total",
			Help:      "Tax-type lookups by the provider that answered.",
		}, []string{"provider", "code"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_provider_failures_total",
			Help:      "External provider failures that triggered the fallback.",
		}, []string{"code"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.upstreamRequests,
		m.upstreamDuration,
		m.upstreamErrors,
		m.resolutions,
		m.providerFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records inbound request counts and latency by route template
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordRequestDuration observes outbound latency. The path is dropped to keep
// label cardinality bounded by method.
func (m *Metrics) RecordRequestDuration(method, _ string, _ int, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordRequestCount counts outbound responses by status
func (m *Metrics) RecordRequestCount(method, _ string, statusCode int) {
	m.upstreamRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

// RecordRequestError counts outbound transport failures
func (m *Metrics) RecordRequestError(method, _ string) {
	m.upstreamErrors.WithLabelValues(method).Inc()
}

// RecordResolution counts which provider answered a tax-type lookup
func (m *Metrics) RecordResolution(provider, code string) {
	m.resolutions.WithLabelValues(provider, code).Inc()
}

// RecordProviderFailure counts an external failure for code
func (m *Metrics) RecordProviderFailure(code string) {
	m.providerFailures.WithLabelValues(code).Inc()
}
