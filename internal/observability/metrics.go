package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// weather tool server.
type Metrics struct {
	ToolInvocations *prometheus.CounterVec // labels: tool, outcome={success,invalid_argument,unknown_tool,unsupported_location,upstream_error,parse_error}
	ForecastRoutes  *prometheus.CounterVec // labels: region={domestic,global}

	// Upstream request metrics.
	UpstreamRequests *prometheus.CounterVec   // labels: provider={nws,openmeteo}, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: provider={nws,openmeteo}

	// Grid-resolution cache metrics.
	GridCache *prometheus.CounterVec // labels: result={hit,miss,expired}

	ServerReady prometheus.Gauge
}

// NewMetrics creates and registers all server metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ToolInvocations,
		m.ForecastRoutes,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.GridCache,
		m.ServerReady,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ToolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_mcp",
			Name:      "tool_invocations_total",
			Help:      "Tool invocations by tool name and outcome.",
		}, []string{"tool", "outcome"}),
		ForecastRoutes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_mcp",
			Name:      "forecast_routes_total",
			Help:      "Forecast requests by classified region.",
		}, []string{"region"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_mcp",
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weather_mcp",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		GridCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_mcp",
			Name:      "grid_cache_total",
			Help:      "NWS grid-resolution cache lookups by result.",
		}, []string{"result"}),
		ServerReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_mcp",
			Name:      "server_ready",
			Help:      "1 when the MCP server is serving, 0 otherwise.",
		}),
	}
}
