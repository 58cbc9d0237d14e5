package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records outgoing API calls. Safe for concurrent use.
type Collector struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	errors        *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	requiredFails *prometheus.CounterVec
}

// New registers the client collectors on a fresh registry
func New() *Collector {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry registers the client collectors on reg
func NewWithRegistry(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pcapi_client_requests_total",
			Help: "The total number of API calls sent, by operation and status code",
		}, []string{"operation", "method", "code"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pcapi_client_transport_errors_total",
			Help: "The total number of API calls that never got a response",
		}, []string{"operation"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pcapi_client_request_duration_seconds",
			Help:    "Time spent waiting for API responses",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		requiredFails: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pcapi_client_required_param_errors_total",
			Help: "The total number of calls rejected before sending because a required parameter was missing",
		}, []string{"operation", "field"}),
	}
}

// ObserveResponse records a call that got an HTTP response
func (c *Collector) ObserveResponse(operation, method string, code int, elapsed time.Duration) {
	c.requests.WithLabelValues(operation, method, strconv.Itoa(code)).Inc()
	c.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveTransportError records a call that failed before any response
func (c *Collector) ObserveTransportError(operation string, elapsed time.Duration) {
	c.errors.WithLabelValues(operation).Inc()
	c.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveRequiredError records a call rejected by parameter validation
func (c *Collector) ObserveRequiredError(operation, field string) {
	c.requiredFails.WithLabelValues(operation, field).Inc()
}

// Registry exposes the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collected metrics in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
