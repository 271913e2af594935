// Package domain models the weather tool server's core types: coordinates,
// the normalized forecast/alert shapes, the region classifier, the state-code
// set, the error taxonomy, and text rendering.
//
// # Providers
//
// Two upstream providers feed the normalized shapes:
//
//	NWS (api.weather.gov)       — authoritative US alerts and forecasts.
//	                              Forecasts need a two-step lookup: raw
//	                              coordinates resolve to a forecast grid
//	                              (gridId/gridX/gridY) before periods can be
//	                              fetched. Alerts are keyed by two-letter
//	                              state/territory codes.
//	Open-Meteo (open-meteo.com) — worldwide daily forecasts, queried directly
//	                              by coordinates. Conditions arrive as numeric
//	                              WMO weather codes and are synthesized into
//	                              human-readable descriptions by the adapter.
//
// # Region classification
//
// [BoundingBox.Classify] decides which provider serves a coordinate pair
// using an inclusive rectangular approximation of NWS coverage (default
// lat 24–72, lon -180–-60). The approximation is documented on [BoundingBox];
// misses inside the box surface as unsupported_location from the NWS adapter
// and are never silently retried against Open-Meteo.
//
// # Errors
//
// Every failure crossing the tool boundary is a [*Error] with one of five
// kinds: invalid_argument, unknown_tool, unsupported_location,
// upstream_error, parse_error. All are terminal for the request.
package domain
