package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	bounds := DefaultDomesticBounds()

	tests := []struct {
		name   string
		coords Coordinates
		want   Region
	}{
		{"new york", Coordinates{Latitude: 40.7128, Longitude: -74.0060}, RegionDomestic},
		{"los angeles", Coordinates{Latitude: 34.0522, Longitude: -118.2437}, RegionDomestic},
		{"anchorage", Coordinates{Latitude: 61.2181, Longitude: -149.9003}, RegionDomestic},
		{"honolulu", Coordinates{Latitude: 21.3069, Longitude: -157.8583}, RegionGlobal}, // below the box: a documented approximation miss
		{"san juan", Coordinates{Latitude: 18.4655, Longitude: -66.1057}, RegionGlobal},  // same: Puerto Rico sits south of lat 24
		{"tokyo", Coordinates{Latitude: 35.6762, Longitude: 139.6503}, RegionGlobal},
		{"berlin", Coordinates{Latitude: 52.52, Longitude: 13.41}, RegionGlobal},
		{"sydney", Coordinates{Latitude: -33.8688, Longitude: 151.2093}, RegionGlobal},
		{"lat min boundary", Coordinates{Latitude: 24, Longitude: -100}, RegionDomestic},
		{"lat max boundary", Coordinates{Latitude: 72, Longitude: -100}, RegionDomestic},
		{"lon min boundary", Coordinates{Latitude: 40, Longitude: -180}, RegionDomestic},
		{"lon max boundary", Coordinates{Latitude: 40, Longitude: -60}, RegionDomestic},
		{"just below lat min", Coordinates{Latitude: 23.9999, Longitude: -100}, RegionGlobal},
		{"just east of lon max", Coordinates{Latitude: 40, Longitude: -59.9999}, RegionGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bounds.Classify(tt.coords))
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	bounds := DefaultDomesticBounds()
	c := Coordinates{Latitude: 24, Longitude: -60}

	first := bounds.Classify(c)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, bounds.Classify(c))
	}
}

func TestClassifyCustomBounds(t *testing.T) {
	// A tightened box excludes Alaska.
	bounds := BoundingBox{LatMin: 24, LatMax: 50, LonMin: -125, LonMax: -66}

	assert.Equal(t, RegionDomestic, bounds.Classify(Coordinates{Latitude: 40.7128, Longitude: -74.0060}))
	assert.Equal(t, RegionGlobal, bounds.Classify(Coordinates{Latitude: 61.2181, Longitude: -149.9003}))
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "domestic", RegionDomestic.String())
	assert.Equal(t, "global", RegionGlobal.String())
}
