package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-mcp/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// HTTPAddr is the ops server bind address for /healthz, /readyz, and
	// /metrics. Empty disables the ops server; stdio tools usually run
	// without it.
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Upstream provider configuration.
	NWSBaseURL       string
	OpenMeteoBaseURL string
	UserAgent        string
	UpstreamTimeout  time.Duration
	ForecastDays     int

	// Grid-resolution cache (coordinates → NWS forecast URL).
	GridCacheSize int
	GridCacheTTL  time.Duration

	// DomesticBounds is the coverage approximation used to route forecasts.
	DomesticBounds domain.BoundingBox
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	upstreamTimeout, err := parseDuration("UPSTREAM_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	gridCacheTTL, err := parseDuration("GRID_CACHE_TTL", "1h")
	if err != nil {
		return nil, err
	}

	forecastDays, err := parsePositiveInt("FORECAST_DAYS", 7)
	if err != nil {
		return nil, err
	}
	if forecastDays > 16 {
		return nil, errors.New("FORECAST_DAYS must be at most 16 (Open-Meteo limit)")
	}

	gridCacheSize, err := parsePositiveInt("GRID_CACHE_SIZE", 500)
	if err != nil {
		return nil, err
	}

	bounds, err := parseBounds()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		NWSBaseURL:       envOrDefault("NWS_BASE_URL", "https://api.weather.gov"),
		OpenMeteoBaseURL: envOrDefault("OPENMETEO_BASE_URL", "https://api.open-meteo.com/v1"),
		UserAgent:        envOrDefault("USER_AGENT", "weather-mcp/0.1.0 (github.com/couchcryptid/weather-mcp)"),
		UpstreamTimeout:  upstreamTimeout,
		ForecastDays:     forecastDays,

		GridCacheSize: gridCacheSize,
		GridCacheTTL:  gridCacheTTL,

		DomesticBounds: bounds,
	}

	if cfg.UserAgent == "" {
		return nil, errors.New("USER_AGENT is required: NWS policy requires a descriptive client identifier")
	}

	return cfg, nil
}

// parseBounds reads the domestic bounding box, defaulting to the NWS coverage
// approximation. The box is env-tunable so deployments near coverage edges
// can adjust routing without a rebuild.
func parseBounds() (domain.BoundingBox, error) {
	def := domain.DefaultDomesticBounds()

	latMin, err := parseFloat("DOMESTIC_LAT_MIN", def.LatMin)
	if err != nil {
		return domain.BoundingBox{}, err
	}
	latMax, err := parseFloat("DOMESTIC_LAT_MAX", def.LatMax)
	if err != nil {
		return domain.BoundingBox{}, err
	}
	lonMin, err := parseFloat("DOMESTIC_LON_MIN", def.LonMin)
	if err != nil {
		return domain.BoundingBox{}, err
	}
	lonMax, err := parseFloat("DOMESTIC_LON_MAX", def.LonMax)
	if err != nil {
		return domain.BoundingBox{}, err
	}

	if latMin > latMax || lonMin > lonMax {
		return domain.BoundingBox{}, errors.New("domestic bounds are inverted: min must not exceed max")
	}

	return domain.BoundingBox{LatMin: latMin, LatMax: latMax, LonMin: lonMin, LonMax: lonMax}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return f, nil
}
