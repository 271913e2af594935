package openmeteo

import "math"

// weatherCodeDescription converts a WMO 4677 weather code to a short
// human-readable description, matching the categories Open-Meteo documents
// for its daily weather_code field.
func weatherCodeDescription(code int) string {
	switch code {
	case 0:
		return "Clear sky"
	case 1:
		return "Mainly clear"
	case 2:
		return "Partly cloudy"
	case 3:
		return "Overcast"
	case 45, 48:
		return "Foggy"
	case 51, 53, 55:
		return "Drizzle"
	case 56, 57:
		return "Freezing drizzle"
	case 61, 63, 65:
		return "Rain"
	case 66, 67:
		return "Freezing rain"
	case 71, 73, 75:
		return "Snow"
	case 77:
		return "Snow grains"
	case 80, 81, 82:
		return "Rain showers"
	case 85, 86:
		return "Snow showers"
	case 95:
		return "Thunderstorm"
	case 96, 99:
		return "Thunderstorm with hail"
	default:
		return "Unknown"
	}
}

// compassDirection converts wind direction degrees to a 16-point compass
// label. 0° is north; sectors are 22.5° wide and centered on each point.
func compassDirection(degrees float64) string {
	points := [16]string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	deg := math.Mod(math.Mod(degrees, 360)+360, 360)
	idx := int(math.Floor(deg/22.5 + 0.5)) % 16
	return points[idx]
}
