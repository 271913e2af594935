package domain

// Region identifies which provider serves a coordinate pair.
type Region int

const (
	// RegionDomestic routes to the NWS adapter.
	RegionDomestic Region = iota
	// RegionGlobal routes to the Open-Meteo adapter.
	RegionGlobal
)

func (r Region) String() string {
	if r == RegionDomestic {
		return "domestic"
	}
	return "global"
}

// BoundingBox is the rectangular approximation of the domestic provider's
// coverage area. True NWS coverage follows geopolitical boundaries; a box is
// deliberately coarse — points near Alaska, Hawaii, territories, or land
// borders may misclassify, and a domestic miss surfaces as
// unsupported_location from the adapter rather than a silent fallback.
// The box is configurable (see internal/config) rather than hard-coded.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// DefaultDomesticBounds covers the continental US, Alaska, Hawaii, and
// territories: lat 24–72, lon -180–-60.
func DefaultDomesticBounds() BoundingBox {
	return BoundingBox{LatMin: 24, LatMax: 72, LonMin: -180, LonMax: -60}
}

// Classify reports which region serves the given coordinates. Pure, total,
// and deterministic: bounds are inclusive so boundary points always resolve
// the same way, and there is no failure path (range validation happens at the
// tool boundary).
func (b BoundingBox) Classify(c Coordinates) Region {
	if c.Latitude >= b.LatMin && c.Latitude <= b.LatMax &&
		c.Longitude >= b.LonMin && c.Longitude <= b.LonMax {
		return RegionDomestic
	}
	return RegionGlobal
}
