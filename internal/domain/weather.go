package domain

import "context"

// Coordinates is a WGS-84 latitude/longitude pair. Values are validated at
// the tool boundary; everything below this layer may assume they are finite
// and in range.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ForecastPeriod is one time-bucketed forecast entry in the normalized shape
// shared by both providers. NWS periods map onto it directly; Open-Meteo
// daily entries are synthesized into it (see the openmeteo adapter).
// Name is a period label ("Tonight") for NWS and an ISO date for Open-Meteo.
// WindSpeed stays a human-readable string ("5 to 10 mph", "14.2 km/h")
// because the providers report it in different units and precision.
type ForecastPeriod struct {
	Name             string
	Temperature      float64
	TemperatureUnit  string
	WindSpeed        string
	WindDirection    string
	ShortForecast    string
	DetailedForecast string
}

// AlertSummary is one active weather alert from the domestic provider.
// There is no global equivalent.
type AlertSummary struct {
	Event       string
	Severity    string
	Headline    string
	Description string
	Area        string
}

// ForecastProvider fetches a normalized forecast for a coordinate pair.
// Both adapters implement it; the dispatcher selects one per request based
// on the region classifier.
type ForecastProvider interface {
	GetForecast(ctx context.Context, coords Coordinates) ([]ForecastPeriod, error)
}

// AlertProvider fetches active alerts for a US state or territory.
// Only the domestic adapter implements it.
type AlertProvider interface {
	GetAlerts(ctx context.Context, state string) ([]AlertSummary, error)
}
