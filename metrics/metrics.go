// Package metrics provides Prometheus metrics for the PokeAPI MCP server.
// It tracks tool call counts and latencies, upstream API calls and the HTTP transport.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace for all metrics
const (
	Namespace = "pokeapi_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// UpstreamLatency measures PokeAPI call latency by resource
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "upstream_latency_seconds",
		Help:      "PokeAPI call latency by resource",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource"})

	// UpstreamRequestsTotal counts PokeAPI requests
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_requests_total",
		Help:      "Total PokeAPI requests by resource and status",
	}, []string{"resource", "status"})

	// UpstreamErrors counts PokeAPI errors by error code
	UpstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "upstream_errors_total",
		Help:      "PokeAPI errors by resource and error code",
	}, []string{"resource", "error_code"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by path, method and status code",
	}, []string{"path", "method", "code"})

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"path", "method"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, statusLabel(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordUpstreamCall records a PokeAPI call
func RecordUpstreamCall(resource string, duration float64, success bool, errorCode string) {
	UpstreamRequestsTotal.WithLabelValues(resource, statusLabel(success)).Inc()
	UpstreamLatency.WithLabelValues(resource).Observe(duration)
	if errorCode != "" {
		UpstreamErrors.WithLabelValues(resource, errorCode).Inc()
	}
}

// InstrumentHTTP wraps next so that every request served under path is
// counted and timed. path must be a fixed route, not the raw request URL.
func InstrumentHTTP(path string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"path": path}
	return promhttp.InstrumentHandlerDuration(
		HTTPRequestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(HTTPRequestsTotal.MustCurryWith(labels), next),
	)
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
