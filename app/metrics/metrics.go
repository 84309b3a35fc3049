// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by handlers and gateways.
type Recorder interface {
	RecordRequest(method, path string, statusCode int, duration time.Duration)
	RecordPlatformCall(service string, err error)
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	platformCalls   *prometheus.CounterVec
}

// NewCollector creates a Collector with its own registry so tests can run
// several instances side by side.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beesides_requests_total",
			Help: "Total HTTP requests handled, by method, route and status code",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "beesides_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		platformCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "beesides_platform_calls_total",
			Help: "Upstream platform calls, by service and outcome",
		}, []string{"service", "outcome"}),
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.platformCalls,
	)

	return c
}

// RecordRequest records a completed HTTP request.
func (c *Collector) RecordRequest(method, path string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordPlatformCall records the outcome of one upstream platform call.
func (c *Collector) RecordPlatformCall(service string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.platformCalls.WithLabelValues(service, outcome).Inc()
}

// Handler returns the scrape endpoint handler for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware returns Echo middleware that records every request against the
// registered route pattern, keeping label cardinality bounded.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			c.RecordRequest(ctx.Request().Method, path, ctx.Response().Status, time.Since(start))
			return nil
		}
	}
}
