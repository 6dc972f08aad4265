// README: Converts extracted parameters into provider-shaped requests.
package mapping

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tripdesk/internal/modules/intent"
)

// Request is a provider-shaped parameter bag with all required fields
// defaulted and location values normalized to codes.
type Request map[string]string

// MappingError marks a request that cannot be mapped at all (unknown
// intent or no registered table). It is fatal to the current handler call.
type MappingError struct {
	Intent intent.Intent
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no mapping registered for intent %q", e.Intent)
}

// spec describes one intent's mapping: source-field renames, which target
// fields hold locations, and static defaults for anything left unset.
type mappingSpec struct {
	renames        map[string]string
	locationFields []string
	dateFields     []string
	defaults       map[string]string
}

var registry = map[intent.Intent]mappingSpec{
	intent.IntentFlightSearch: {
		renames: map[string]string{
			"departure":    "originLocationCode",
			"destination":  "destinationLocationCode",
			"outboundDate": "departureDate",
			"returnDate":   "returnDate",
			"adults":       "adults",
			"children":     "children",
			"travelClass":  "travelClass",
			"currency":     "currencyCode",
		},
		locationFields: []string{"originLocationCode", "destinationLocationCode"},
		dateFields:     []string{"departureDate", "returnDate"},
		defaults: map[string]string{
			"adults":       "1",
			"currencyCode": "USD",
			"max":          "20",
		},
	},
	intent.IntentHotelSearch: {
		renames: map[string]string{
			"destination":  "cityCode",
			"checkInDate":  "checkInDate",
			"checkOutDate": "checkOutDate",
			"adults":       "adults",
			"currency":     "currency",
			"query":        "query",
		},
		locationFields: []string{"cityCode"},
		dateFields:     []string{"checkInDate", "checkOutDate"},
		defaults: map[string]string{
			"adults":     "1",
			"currency":   "USD",
			"radius":     "5",
			"radiusUnit": "KM",
		},
	},
	intent.IntentPlaceSearch: {
		renames: map[string]string{
			"query":       "query",
			"destination": "location",
		},
		locationFields: nil, // place searches keep human-readable names
		defaults: map[string]string{
			"language": "en",
		},
	},
}

// FromParameters flattens the extracted parameter bag into mapper input.
func FromParameters(p intent.Parameters) map[string]string {
	src := map[string]string{}
	put := func(k, v string) {
		if v != "" {
			src[k] = v
		}
	}
	put("departure", p.Departure)
	put("destination", p.Destination)
	put("outboundDate", p.OutboundDate)
	put("returnDate", p.ReturnDate)
	put("travelClass", p.TravelClass)
	put("currency", p.Currency)
	put("query", p.Query)
	put("checkInDate", p.CheckInDate)
	put("checkOutDate", p.CheckOutDate)
	if p.Adults > 0 {
		src["adults"] = strconv.Itoa(p.Adults)
	}
	if p.Children > 0 {
		src["children"] = strconv.Itoa(p.Children)
	}
	return src
}

// Map converts a flat parameter bag into the provider request for the given
// intent. Three ordered steps: rename, normalize locations, default. The
// operation is idempotent: mapping an already-mapped request changes nothing.
func Map(in intent.Intent, src map[string]string) (Request, error) {
	spec, ok := registry[in]
	if !ok {
		return nil, &MappingError{Intent: in}
	}

	targets := map[string]bool{}
	for _, t := range spec.renames {
		targets[t] = true
	}
	for k := range spec.defaults {
		targets[k] = true
	}

	req := Request{}
	for k, v := range src {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		switch {
		case spec.renames[k] != "":
			req[spec.renames[k]] = v
		case targets[k]:
			// Already provider-shaped; keep as-is so re-mapping is a no-op.
			req[k] = v
		}
	}

	for _, field := range spec.locationFields {
		if v, ok := req[field]; ok {
			req[field] = NormalizeLocation(v)
		}
	}

	for k, v := range spec.defaults {
		if _, ok := req[k]; !ok {
			req[k] = v
		}
	}

	if in == intent.IntentFlightSearch {
		if tc, ok := req["travelClass"]; ok {
			req["travelClass"] = strings.ToUpper(tc)
		}
	}

	// Post-mapping sanity: dates must still be well-formed, counts numeric.
	for _, field := range spec.dateFields {
		if v, ok := req[field]; ok {
			if _, err := time.Parse("2006-01-02", v); err != nil {
				return nil, fmt.Errorf("mapped field %s has invalid date %q", field, v)
			}
		}
	}
	if v, ok := req["adults"]; ok {
		if _, err := strconv.Atoi(v); err != nil {
			req["adults"] = "1"
		}
	}

	return req, nil
}

// MapParameters is the common entry: flatten then map.
func MapParameters(p intent.Parameters) (Request, error) {
	return Map(p.Intent, FromParameters(p))
}
