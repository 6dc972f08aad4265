// README: Timezone detection from message text and canonical normalization.
package timezone

import (
	"strings"
	"time"
)

// cityZones maps lowercase city/region mentions to IANA zone names.
// Intentionally small: detection is a convenience, not a requirement.
var cityZones = map[string]string{
	"new york":    "America/New_York",
	"nyc":         "America/New_York",
	"los angeles": "America/Los_Angeles",
	"san francisco": "America/Los_Angeles",
	"chicago":     "America/Chicago",
	"london":      "Europe/London",
	"paris":       "Europe/Paris",
	"berlin":      "Europe/Berlin",
	"madrid":      "Europe/Madrid",
	"rome":        "Europe/Rome",
	"tokyo":       "Asia/Tokyo",
	"taipei":      "Asia/Taipei",
	"singapore":   "Asia/Singapore",
	"hong kong":   "Asia/Hong_Kong",
	"sydney":      "Australia/Sydney",
	"dubai":       "Asia/Dubai",
}

// Detect scans a message for a known city or an explicit IANA zone name and
// returns the matching timezone, or "" when nothing is recognized.
func Detect(message string) string {
	lower := strings.ToLower(message)
	for city, zone := range cityZones {
		if strings.Contains(lower, city) {
			return zone
		}
	}
	// Explicit zone names ("Europe/Paris") pass through when loadable.
	for _, tok := range strings.Fields(message) {
		if strings.Contains(tok, "/") {
			if canonical := Normalize(tok); canonical != "" {
				return canonical
			}
		}
	}
	return ""
}

// Normalize resolves a timezone string to its canonical IANA name, or ""
// when the zone is unknown.
func Normalize(tz string) string {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return ""
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return ""
	}
	return loc.String()
}

// Resolve picks the effective zone for a request: an explicit per-conversation
// override wins, then the frontend-supplied zone, then a detected one, then UTC.
func Resolve(override, frontend, message string) *time.Location {
	for _, candidate := range []string{override, frontend, Detect(message)} {
		if canonical := Normalize(candidate); canonical != "" {
			loc, err := time.LoadLocation(canonical)
			if err == nil {
				return loc
			}
		}
	}
	return time.UTC
}
