package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/couchcryptid/weather-mcp/internal/config"
	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/jonboulle/clockwork"
)

const providerLabel = "nws"

// Client is the domestic provider adapter for the National Weather Service
// API. It implements domain.AlertProvider and domain.ForecastProvider.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	grids      *gridCache
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an NWS client. The forecast grid resolution step is
// cached (a coordinate's grid assignment changes rarely); forecast and alert
// payloads are never cached.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   cfg.NWSBaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.UpstreamTimeout,
		},
		grids:   newGridCache(cfg.GridCacheSize, cfg.GridCacheTTL, clockwork.NewRealClock()),
		metrics: metrics,
		logger:  logger,
	}
}

// GetAlerts fetches active alerts for a two-letter state or territory code.
// No active alerts is a successful empty result, not an error.
func (c *Client) GetAlerts(ctx context.Context, state string) ([]domain.AlertSummary, error) {
	u := fmt.Sprintf("%s/alerts/active?area=%s", c.baseURL, url.QueryEscape(state))

	var resp alertResponse
	if err := c.get(ctx, u, &resp); err != nil {
		var se *httpStatusError
		if errors.As(err, &se) {
			return nil, domain.WrapError(domain.KindUpstream, se, "nws: fetch alerts for %s", state)
		}
		return nil, err
	}

	alerts := make([]domain.AlertSummary, 0, len(resp.Features))
	for i, f := range resp.Features {
		if f.Properties.Event == "" || f.Properties.Severity == "" {
			return nil, domain.Errorf(domain.KindParse, "nws: alert feature %d missing event or severity", i)
		}
		alerts = append(alerts, domain.AlertSummary{
			Event:       f.Properties.Event,
			Severity:    f.Properties.Severity,
			Headline:    f.Properties.Headline,
			Description: f.Properties.Description,
			Area:        f.Properties.AreaDesc,
		})
	}

	c.logger.Debug("nws alerts fetched", "state", state, "count", len(alerts))
	return alerts, nil
}

// GetForecast performs the two-step NWS lookup: resolve the coordinates to a
// forecast grid endpoint, then fetch and normalize its periods.
func (c *Client) GetForecast(ctx context.Context, coords domain.Coordinates) ([]domain.ForecastPeriod, error) {
	forecastURL, err := c.resolveForecastURL(ctx, coords)
	if err != nil {
		return nil, err
	}

	var resp forecastResponse
	if err := c.get(ctx, forecastURL, &resp); err != nil {
		var se *httpStatusError
		if errors.As(err, &se) {
			return nil, domain.WrapError(domain.KindUpstream, se, "nws: fetch forecast")
		}
		return nil, err
	}

	periods := make([]domain.ForecastPeriod, 0, len(resp.Properties.Periods))
	for i, p := range resp.Properties.Periods {
		if p.Name == "" {
			return nil, domain.Errorf(domain.KindParse, "nws: forecast period %d missing name", i)
		}
		periods = append(periods, domain.ForecastPeriod{
			Name:             p.Name,
			Temperature:      p.Temperature,
			TemperatureUnit:  p.TemperatureUnit,
			WindSpeed:        p.WindSpeed,
			WindDirection:    p.WindDirection,
			ShortForecast:    p.ShortForecast,
			DetailedForecast: p.DetailedForecast,
		})
	}

	c.logger.Debug("nws forecast fetched",
		"lat", coords.Latitude, "lon", coords.Longitude, "periods", len(periods))
	return periods, nil
}

// resolveForecastURL maps coordinates to the grid forecast endpoint via
// GET /points/{lat},{lon}, consulting the grid cache first. A 404 from the
// points endpoint means the location is inside the routing bounds but outside
// actual NWS coverage (typically US coastal waters).
func (c *Client) resolveForecastURL(ctx context.Context, coords domain.Coordinates) (string, error) {
	// NWS truncates point coordinates to four decimal places.
	key := fmt.Sprintf("%.4f,%.4f", coords.Latitude, coords.Longitude)

	cached, result := c.grids.lookup(key)
	c.metrics.GridCache.WithLabelValues(result).Inc()
	if result == cacheHit {
		return cached, nil
	}

	u := fmt.Sprintf("%s/points/%s", c.baseURL, key)

	var resp pointsResponse
	if err := c.get(ctx, u, &resp); err != nil {
		var se *httpStatusError
		if errors.As(err, &se) {
			if se.status == http.StatusNotFound {
				return "", domain.Errorf(domain.KindUnsupportedLocation,
					"nws: no forecast grid for %s; the point may be in US waters not covered by the grid system", key)
			}
			return "", domain.WrapError(domain.KindUpstream, se, "nws: resolve grid point %s", key)
		}
		return "", err
	}

	if resp.Properties.GridID == "" {
		return "", domain.Errorf(domain.KindParse, "nws: points response for %s missing grid identifier", key)
	}

	forecastURL := fmt.Sprintf("%s/gridpoints/%s/%d,%d/forecast",
		c.baseURL, resp.Properties.GridID, resp.Properties.GridX, resp.Properties.GridY)

	c.grids.put(key, forecastURL)
	return forecastURL, nil
}

// get performs a GET with the NWS-required headers and decodes the JSON body.
// Transport failures and undecodable bodies come back as domain errors;
// non-2xx statuses come back as *httpStatusError so callers can special-case
// specific statuses before wrapping.
func (c *Client) get(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.WrapError(domain.KindUpstream, err, "nws: create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	timer := observability.NewUpstreamTimer(c.metrics, providerLabel)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		timer.Done(false)
		return domain.WrapError(domain.KindUpstream, err, "nws: request %s", fullURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		timer.Done(false)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &httpStatusError{status: resp.StatusCode, body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		timer.Done(false)
		return domain.WrapError(domain.KindParse, err, "nws: decode response from %s", fullURL)
	}

	timer.Done(true)
	return nil
}

// httpStatusError reports a non-success upstream status with a body excerpt.
type httpStatusError struct {
	status int
	body   string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.status, e.body)
}

// NWS API response types.

type alertResponse struct {
	Features []alertFeature `json:"features"`
}

type alertFeature struct {
	Properties alertProperties `json:"properties"`
}

type alertProperties struct {
	Event       string `json:"event"`
	Severity    string `json:"severity"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	AreaDesc    string `json:"areaDesc"`
}

type pointsResponse struct {
	Properties pointsProperties `json:"properties"`
}

type pointsProperties struct {
	GridID string `json:"gridId"`
	GridX  int    `json:"gridX"`
	GridY  int    `json:"gridY"`
}

type forecastResponse struct {
	Properties forecastProperties `json:"properties"`
}

type forecastProperties struct {
	Periods []forecastPeriod `json:"periods"`
}

type forecastPeriod struct {
	Name             string  `json:"name"`
	Temperature      float64 `json:"temperature"`
	TemperatureUnit  string  `json:"temperatureUnit"`
	WindSpeed        string  `json:"windSpeed"`
	WindDirection    string  `json:"windDirection"`
	ShortForecast    string  `json:"shortForecast"`
	DetailedForecast string  `json:"detailedForecast"`
}
