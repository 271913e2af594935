package domain

import (
	"fmt"
	"strings"
)

// Messages rendered for empty result sets. A successful call never produces
// an empty text block.
const (
	NoActiveAlertsMessage = "No active alerts for this state."
	NoForecastDataMessage = "No forecast data available."
)

// FormatAlerts renders alerts as a human-readable block, one entry per alert
// in fixed field order.
func FormatAlerts(alerts []AlertSummary) string {
	if len(alerts) == 0 {
		return NoActiveAlertsMessage
	}

	var b strings.Builder
	b.WriteString("Active Weather Alerts:\n\n")
	for i, a := range alerts {
		fmt.Fprintf(&b, "Alert %d:\n  Event: %s\n  Severity: %s\n  Area: %s\n", i+1, a.Event, a.Severity, a.Area)
		if a.Headline != "" {
			fmt.Fprintf(&b, "  Headline: %s\n", a.Headline)
		}
		if a.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", a.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatForecast renders forecast periods as a human-readable block, one
// entry per period in fixed field order.
func FormatForecast(periods []ForecastPeriod) string {
	if len(periods) == 0 {
		return NoForecastDataMessage
	}

	var b strings.Builder
	b.WriteString("Weather Forecast:\n\n")
	for _, p := range periods {
		fmt.Fprintf(&b, "%s:\n  Temperature: %s\u00b0%s\n  Wind: %s %s\n  Conditions: %s\n",
			p.Name, formatTemp(p.Temperature), p.TemperatureUnit, p.WindSpeed, p.WindDirection, p.ShortForecast)
		if p.DetailedForecast != "" {
			fmt.Fprintf(&b, "  Details: %s\n", p.DetailedForecast)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatTemp drops the trailing ".0" NWS-style whole-degree temperatures
// would otherwise carry.
func formatTemp(t float64) string {
	if t == float64(int64(t)) {
		return fmt.Sprintf("%d", int64(t))
	}
	return fmt.Sprintf("%.1f", t)
}
