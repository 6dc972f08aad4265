// README: City-name to location-code lookup and normalization.
package mapping

import (
	"regexp"
	"strings"
)

var codePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// cityCodes maps lowercase city names (and common shorthand) to the
// canonical code the search providers expect. Shorthand like "nyc" is a
// city alias, not an airport, so it lives here rather than passing through.
var cityCodes = map[string]string{
	"new york":      "JFK",
	"new york city": "JFK",
	"nyc":           "JFK",
	"paris":         "CDG",
	"london":        "LHR",
	"tokyo":         "HND",
	"los angeles":   "LAX",
	"san francisco": "SFO",
	"las vegas":     "LAS",
	"chicago":       "ORD",
	"boston":        "BOS",
	"miami":         "MIA",
	"seattle":       "SEA",
	"rome":          "FCO",
	"madrid":        "MAD",
	"barcelona":     "BCN",
	"lisbon":        "LIS",
	"berlin":        "BER",
	"amsterdam":     "AMS",
	"dubai":         "DXB",
	"singapore":     "SIN",
	"hong kong":     "HKG",
	"sydney":        "SYD",
	"taipei":        "TPE",
}

// NormalizeLocation converts a user-facing location into a provider code.
// Total by design: known city names resolve through the table, bare
// 3-letter tokens pass through uppercased, and anything else comes back
// trimmed and unchanged. A code is never fabricated.
func NormalizeLocation(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if code, ok := cityCodes[strings.ToLower(trimmed)]; ok {
		return code
	}
	if codePattern.MatchString(trimmed) {
		return strings.ToUpper(trimmed)
	}
	return trimmed
}

// IsLocationCode reports whether s is already a bare 3-letter code.
func IsLocationCode(s string) bool {
	return codePattern.MatchString(strings.TrimSpace(s))
}

// KnownCities returns the lowercase city-name to code table. Read-only.
func KnownCities() map[string]string {
	return cityCodes
}
