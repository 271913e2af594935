package mcp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/couchcryptid/weather-mcp/internal/tools"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAlertProvider struct{}

func (stubAlertProvider) GetAlerts(_ context.Context, _ string) ([]domain.AlertSummary, error) {
	return nil, nil
}

type stubForecastProvider struct {
	periods []domain.ForecastPeriod
	err     error
}

func (s stubForecastProvider) GetForecast(_ context.Context, _ domain.Coordinates) ([]domain.ForecastPeriod, error) {
	return s.periods, s.err
}

func newTestServer(global stubForecastProvider) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := tools.NewDispatcher(
		stubAlertProvider{}, stubForecastProvider{}, global,
		domain.DefaultDomesticBounds(),
		logger,
		observability.NewMetricsForTesting(),
	)
	return NewServer(d, "test", logger)
}

func callToolRequest(name string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandle_Success(t *testing.T) {
	srv := newTestServer(stubForecastProvider{
		periods: []domain.ForecastPeriod{
			{Name: "2026-08-23", Temperature: 21.5, TemperatureUnit: "C", WindSpeed: "14 km/h", WindDirection: "SW", ShortForecast: "Overcast"},
		},
	})

	result, err := srv.handle(context.Background(), callToolRequest("get_forecast", map[string]any{
		"latitude":  52.52,
		"longitude": 13.41,
	}))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.False(t, result.IsError)
	assert.Contains(t, textOf(t, result), "Overcast")
}

func TestHandle_DispatcherErrorBecomesToolError(t *testing.T) {
	srv := newTestServer(stubForecastProvider{})

	result, err := srv.handle(context.Background(), callToolRequest("get_forecast", map[string]any{
		"latitude":  200.0,
		"longitude": 13.41,
	}))
	require.NoError(t, err, "tool failures are results, not protocol errors")
	require.NotNil(t, result)

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "invalid_argument")
}

func TestHandle_UnknownTool(t *testing.T) {
	srv := newTestServer(stubForecastProvider{})

	result, err := srv.handle(context.Background(), callToolRequest("get_weather_xyz", nil))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "unknown_tool")
}

func TestToolDefinitions(t *testing.T) {
	alerts := alertsTool()
	assert.Equal(t, tools.ToolGetAlerts, alerts.Name)
	assert.Equal(t, []string{"state"}, alerts.InputSchema.Required)

	forecast := forecastTool()
	assert.Equal(t, tools.ToolGetForecast, forecast.Name)
	assert.ElementsMatch(t, []string{"latitude", "longitude"}, forecast.InputSchema.Required)
}
