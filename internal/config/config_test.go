package config

import (
	"testing"
	"time"

	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, "https://api.weather.gov", cfg.NWSBaseURL)
	assert.Equal(t, "https://api.open-meteo.com/v1", cfg.OpenMeteoBaseURL)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 7, cfg.ForecastDays)

	assert.Equal(t, 500, cfg.GridCacheSize)
	assert.Equal(t, time.Hour, cfg.GridCacheTTL)

	assert.Equal(t, domain.DefaultDomesticBounds(), cfg.DomesticBounds)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("NWS_BASE_URL", "http://localhost:8001")
	t.Setenv("OPENMETEO_BASE_URL", "http://localhost:8002/v1")
	t.Setenv("USER_AGENT", "custom-agent/1.0")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("GRID_CACHE_SIZE", "50")
	t.Setenv("GRID_CACHE_TTL", "15m")
	t.Setenv("DOMESTIC_LAT_MIN", "25")
	t.Setenv("DOMESTIC_LAT_MAX", "50")
	t.Setenv("DOMESTIC_LON_MIN", "-125")
	t.Setenv("DOMESTIC_LON_MAX", "-66")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8001", cfg.NWSBaseURL)
	assert.Equal(t, "http://localhost:8002/v1", cfg.OpenMeteoBaseURL)
	assert.Equal(t, "custom-agent/1.0", cfg.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, 50, cfg.GridCacheSize)
	assert.Equal(t, 15*time.Minute, cfg.GridCacheTTL)
	assert.Equal(t, domain.BoundingBox{LatMin: 25, LatMax: 50, LonMin: -125, LonMax: -66}, cfg.DomesticBounds)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPSTREAM_TIMEOUT")
}

func TestLoad_NegativeDuration(t *testing.T) {
	t.Setenv("GRID_CACHE_TTL", "-5m")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GRID_CACHE_TTL")
}

func TestLoad_ForecastDaysBounds(t *testing.T) {
	t.Setenv("FORECAST_DAYS", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("FORECAST_DAYS", "17")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORECAST_DAYS")
}

func TestLoad_InvertedBounds(t *testing.T) {
	t.Setenv("DOMESTIC_LAT_MIN", "50")
	t.Setenv("DOMESTIC_LAT_MAX", "25")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inverted")
}
