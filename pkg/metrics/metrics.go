// Package metrics exposes genhub's Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds all Prometheus metrics. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Generator lifecycle metrics
	Operations     *prometheus.CounterVec
	Busy           prometheus.Gauge
	SearchDuration prometheus.Histogram

	// Connection metrics
	SessionsActive prometheus.Gauge
	RPCMessages    *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genhub_generator_operations_total",
				Help: "Generator install, uninstall and update operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		Busy: factory.NewGauge(prometheus.GaugeOpts{
			Name: "genhub_generators_busy",
			Help: "Generators currently being installed or uninstalled",
		}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "genhub_registry_search_duration_seconds",
			Help:    "Registry search latency",
			Buckets: prometheus.DefBuckets,
		}),

		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "genhub_sessions_active",
			Help: "Number of connected UI sessions",
		}),
		RPCMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genhub_rpc_messages_total",
				Help: "RPC messages by direction and method",
			},
			[]string{"direction", "method"},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "genhub_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "genhub_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordOperation counts one finished generator operation.
func (m *Metrics) RecordOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.Operations.WithLabelValues(operation, outcome).Inc()
}

// SetBusy reports how many generators are being handled.
func (m *Metrics) SetBusy(n int) {
	if m == nil {
		return
	}
	m.Busy.Set(float64(n))
}

// ObserveSearch records the duration of one registry search.
func (m *Metrics) ObserveSearch(d time.Duration) {
	if m == nil {
		return
	}
	m.SearchDuration.Observe(d.Seconds())
}

// IncSessions counts a newly attached UI session.
func (m *Metrics) IncSessions() {
	if m == nil {
		return
	}
	m.SessionsActive.Inc()
}

// DecSessions counts a detached UI session.
func (m *Metrics) DecSessions() {
	if m == nil {
		return
	}
	m.SessionsActive.Dec()
}

// RecordRPCMessage counts one RPC message; direction is "in" or "out".
func (m *Metrics) RecordRPCMessage(direction, method string) {
	if m == nil {
		return
	}
	m.RPCMessages.WithLabelValues(direction, method).Inc()
}

// Middleware creates a Gin middleware for request metrics.
func Middleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
