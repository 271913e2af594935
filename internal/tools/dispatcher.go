// Package tools implements the tool dispatcher: it validates tool-call
// arguments, routes to a provider adapter, and renders the normalized result
// as text. The MCP transport binding lives in internal/adapter/mcp; this
// package has no protocol dependency so the dispatch semantics stay testable
// in isolation.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
)

// Tool names recognized by the dispatcher.
const (
	ToolGetAlerts   = "get_alerts"
	ToolGetForecast = "get_forecast"
)

// Request is one tool invocation as delivered by the RPC layer.
type Request struct {
	Name      string
	Arguments map[string]any
}

// Dispatcher validates, routes, and renders tool invocations. It is
// stateless per request and safe for concurrent use.
type Dispatcher struct {
	alerts   domain.AlertProvider
	domestic domain.ForecastProvider
	global   domain.ForecastProvider
	bounds   domain.BoundingBox
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
}

// NewDispatcher wires the dispatcher to its providers. The domestic forecast
// provider serves coordinates inside bounds; everything else goes global.
func NewDispatcher(
	alerts domain.AlertProvider,
	domestic, global domain.ForecastProvider,
	bounds domain.BoundingBox,
	logger *slog.Logger,
	metrics *observability.Metrics,
) *Dispatcher {
	return &Dispatcher{
		alerts:   alerts,
		domestic: domestic,
		global:   global,
		bounds:   bounds,
		logger:   logger,
		metrics:  metrics,
	}
}

// MarkReady flags the dispatcher as serving, for the readiness probe.
func (d *Dispatcher) MarkReady() {
	d.ready.Store(true)
	d.metrics.ServerReady.Set(1)
}

// CheckReadiness returns nil once the MCP server is serving.
func (d *Dispatcher) CheckReadiness(_ context.Context) error {
	if !d.ready.Load() {
		return errors.New("mcp server is not serving yet")
	}
	return nil
}

// Dispatch executes one tool invocation. On success the returned string is a
// non-empty human-readable text block; on failure the error is a
// *domain.Error carrying one of the five kinds. Errors are terminal: nothing
// is retried and a domestic failure never falls back to the global provider.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (string, error) {
	text, err := d.dispatch(ctx, req)

	toolLabel := req.Name
	if req.Name != ToolGetAlerts && req.Name != ToolGetForecast {
		toolLabel = "unknown"
	}
	outcome := "success"
	if err != nil {
		outcome = string(domain.KindOf(err))
		d.logger.Warn("tool invocation failed", "tool", req.Name, "kind", outcome, "error", err)
	}
	d.metrics.ToolInvocations.WithLabelValues(toolLabel, outcome).Inc()

	return text, err
}

func (d *Dispatcher) dispatch(ctx context.Context, req Request) (string, error) {
	switch req.Name {
	case ToolGetAlerts:
		return d.handleGetAlerts(ctx, req)
	case ToolGetForecast:
		return d.handleGetForecast(ctx, req)
	default:
		return "", domain.Errorf(domain.KindUnknownTool,
			"unknown tool %q: available tools are %s and %s", req.Name, ToolGetAlerts, ToolGetForecast)
	}
}

func (d *Dispatcher) handleGetAlerts(ctx context.Context, req Request) (string, error) {
	raw, err := stringArg(req.Arguments, "state")
	if err != nil {
		return "", err
	}

	state, ok := domain.NormalizeStateCode(raw)
	if !ok {
		return "", domain.Errorf(domain.KindInvalidArgument,
			"invalid state code %q: expected a two-letter US state or territory code such as CA or NY", raw)
	}

	alerts, err := d.alerts.GetAlerts(ctx, state)
	if err != nil {
		return "", err
	}
	return domain.FormatAlerts(alerts), nil
}

func (d *Dispatcher) handleGetForecast(ctx context.Context, req Request) (string, error) {
	lat, err := numberArg(req.Arguments, "latitude")
	if err != nil {
		return "", err
	}
	lon, err := numberArg(req.Arguments, "longitude")
	if err != nil {
		return "", err
	}
	if lat < -90 || lat > 90 {
		return "", domain.Errorf(domain.KindInvalidArgument, "latitude %v is outside [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return "", domain.Errorf(domain.KindInvalidArgument, "longitude %v is outside [-180, 180]", lon)
	}

	coords := domain.Coordinates{Latitude: lat, Longitude: lon}
	region := d.bounds.Classify(coords)
	d.metrics.ForecastRoutes.WithLabelValues(region.String()).Inc()
	d.logger.Debug("forecast routed", "lat", lat, "lon", lon, "region", region.String())

	provider := d.global
	if region == domain.RegionDomestic {
		provider = d.domestic
	}

	periods, err := provider.GetForecast(ctx, coords)
	if err != nil {
		return "", err
	}
	return domain.FormatForecast(periods), nil
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", domain.Errorf(domain.KindInvalidArgument, "missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", domain.Errorf(domain.KindInvalidArgument, "argument %q must be a string", key)
	}
	return s, nil
}

// numberArg accepts the two encodings JSON arguments arrive in: float64 from
// the default decoder and json.Number when the transport preserves numeric
// text.
func numberArg(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, domain.Errorf(domain.KindInvalidArgument, "missing required argument %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, domain.Errorf(domain.KindInvalidArgument, "argument %q is not a valid number: %v", key, n)
		}
		return f, nil
	default:
		return 0, domain.Errorf(domain.KindInvalidArgument, "argument %q must be a number", key)
	}
}
