package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-mcp/internal/config"
	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
)

const providerLabel = "openmeteo"

// dailyFields is the field selection requested from the daily forecast
// endpoint. Order matters only for readability; the response keys by name.
const dailyFields = "temperature_2m_max,temperature_2m_min,weather_code," +
	"wind_speed_10m_max,wind_direction_10m_dominant,precipitation_sum"

// Client is the global provider adapter for the Open-Meteo forecast API.
// It implements domain.ForecastProvider.
type Client struct {
	baseURL      string
	userAgent    string
	httpClient   *http.Client
	forecastDays int
	metrics      *observability.Metrics
	logger       *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   cfg.OpenMeteoBaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		forecastDays: cfg.ForecastDays,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetForecast queries the daily forecast directly by coordinates (no grid
// indirection) and synthesizes the normalized periods: WMO weather codes
// become short descriptions, dominant wind degrees become compass points.
func (c *Client) GetForecast(ctx context.Context, coords domain.Coordinates) ([]domain.ForecastPeriod, error) {
	params := url.Values{
		"latitude":      {strconv.FormatFloat(coords.Latitude, 'f', 4, 64)},
		"longitude":     {strconv.FormatFloat(coords.Longitude, 'f', 4, 64)},
		"daily":         {dailyFields},
		"timezone":      {"auto"},
		"forecast_days": {strconv.Itoa(c.forecastDays)},
	}
	u := fmt.Sprintf("%s/forecast?%s", c.baseURL, params.Encode())

	var resp forecastResponse
	if err := c.get(ctx, u, &resp); err != nil {
		return nil, err
	}

	if err := resp.Daily.validate(); err != nil {
		return nil, domain.WrapError(domain.KindParse, err, "openmeteo: daily arrays malformed")
	}

	tempUnit := strings.TrimPrefix(resp.DailyUnits.TemperatureMax, "°")
	if tempUnit == "" {
		tempUnit = "C"
	}

	periods := make([]domain.ForecastPeriod, 0, len(resp.Daily.Time))
	for i, day := range resp.Daily.Time {
		periods = append(periods, domain.ForecastPeriod{
			Name:            day,
			Temperature:     resp.Daily.TemperatureMax[i],
			TemperatureUnit: tempUnit,
			WindSpeed: fmt.Sprintf("%.1f %s",
				resp.Daily.WindSpeedMax[i], resp.DailyUnits.WindSpeedMax),
			WindDirection: compassDirection(resp.Daily.WindDirectionDominant[i]),
			ShortForecast: weatherCodeDescription(resp.Daily.WeatherCode[i]),
			DetailedForecast: fmt.Sprintf("High %.1f°%s, low %.1f°%s. Precipitation: %.1f %s.",
				resp.Daily.TemperatureMax[i], tempUnit,
				resp.Daily.TemperatureMin[i], tempUnit,
				resp.Daily.PrecipitationSum[i], resp.DailyUnits.PrecipitationSum),
		})
	}

	c.logger.Debug("openmeteo forecast fetched",
		"lat", coords.Latitude, "lon", coords.Longitude, "days", len(periods))
	return periods, nil
}

func (c *Client) get(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.WrapError(domain.KindUpstream, err, "openmeteo: create request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	timer := observability.NewUpstreamTimer(c.metrics, providerLabel)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		timer.Done(false)
		return domain.WrapError(domain.KindUpstream, err, "openmeteo: request %s", fullURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		timer.Done(false)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Errorf(domain.KindUpstream, "openmeteo: status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		timer.Done(false)
		return domain.WrapError(domain.KindParse, err, "openmeteo: decode response")
	}

	timer.Done(true)
	return nil
}

// Open-Meteo API response types.

type forecastResponse struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Timezone   string     `json:"timezone"`
	Daily      dailyData  `json:"daily"`
	DailyUnits dailyUnits `json:"daily_units"`
}

type dailyData struct {
	Time                  []string  `json:"time"`
	TemperatureMax        []float64 `json:"temperature_2m_max"`
	TemperatureMin        []float64 `json:"temperature_2m_min"`
	WeatherCode           []int     `json:"weather_code"`
	WindSpeedMax          []float64 `json:"wind_speed_10m_max"`
	WindDirectionDominant []float64 `json:"wind_direction_10m_dominant"`
	PrecipitationSum      []float64 `json:"precipitation_sum"`
}

type dailyUnits struct {
	TemperatureMax   string `json:"temperature_2m_max"`
	WindSpeedMax     string `json:"wind_speed_10m_max"`
	PrecipitationSum string `json:"precipitation_sum"`
}

// validate checks that every daily array is as long as the time axis. The
// API zips values by index, so a length mismatch means the response cannot
// be interpreted.
func (d dailyData) validate() error {
	n := len(d.Time)
	if n == 0 {
		return nil
	}
	for name, l := range map[string]int{
		"temperature_2m_max":          len(d.TemperatureMax),
		"temperature_2m_min":          len(d.TemperatureMin),
		"weather_code":                len(d.WeatherCode),
		"wind_speed_10m_max":          len(d.WindSpeedMax),
		"wind_direction_10m_dominant": len(d.WindDirectionDominant),
		"precipitation_sum":           len(d.PrecipitationSum),
	} {
		if l != n {
			return fmt.Errorf("%s has %d entries, want %d", name, l, n)
		}
	}
	return nil
}
