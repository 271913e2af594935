package domain

import "strings"

// stateCodes is the fixed set of two-letter codes the NWS active-alerts
// endpoint accepts as an area: the 50 states, DC, and the territories with
// NWS coverage (AS, GU, MP, PR, VI).
var stateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {}, "DC": {}, "AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

// NormalizeStateCode upper-cases a candidate state code and reports whether
// it is a code the domestic alerts API accepts.
func NormalizeStateCode(s string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(s))
	_, ok := stateCodes[code]
	return code, ok
}
