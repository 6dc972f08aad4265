package mapping

import (
	"errors"
	"reflect"
	"testing"

	"tripdesk/internal/modules/intent"
)

func TestMapFlightSearch(t *testing.T) {
	req, err := MapParameters(intent.Parameters{
		Intent:       intent.IntentFlightSearch,
		Departure:    "NYC",
		Destination:  "Paris",
		OutboundDate: "2030-06-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	if req["originLocationCode"] != "JFK" {
		t.Errorf("origin = %q, want JFK", req["originLocationCode"])
	}
	if req["destinationLocationCode"] != "CDG" {
		t.Errorf("destination = %q, want CDG", req["destinationLocationCode"])
	}
	if req["departureDate"] != "2030-06-01" {
		t.Errorf("departureDate = %q", req["departureDate"])
	}
	if req["adults"] != "1" {
		t.Errorf("adults default = %q, want 1", req["adults"])
	}
	if req["currencyCode"] != "USD" {
		t.Errorf("currencyCode default = %q, want USD", req["currencyCode"])
	}
}

func TestMapIsIdempotent(t *testing.T) {
	first, err := MapParameters(intent.Parameters{
		Intent:       intent.IntentFlightSearch,
		Departure:    "Paris",
		Destination:  "Tokyo",
		OutboundDate: "2030-06-01",
		Adults:       2,
		TravelClass:  "business",
	})
	if err != nil {
		t.Fatal(err)
	}

	second, err := Map(intent.IntentFlightSearch, first)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapping not idempotent:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestMapUnknownIntentFails(t *testing.T) {
	_, err := Map(intent.IntentGeneralQuestion, map[string]string{})
	var mapErr *MappingError
	if !errors.As(err, &mapErr) {
		t.Fatalf("expected MappingError, got %v", err)
	}
}

func TestMapRecoversNonNumericAdults(t *testing.T) {
	req, err := Map(intent.IntentFlightSearch, map[string]string{
		"departure":    "JFK",
		"destination":  "CDG",
		"outboundDate": "2030-06-01",
		"adults":       "two",
	})
	if err != nil {
		t.Fatal(err)
	}
	if req["adults"] != "1" {
		t.Fatalf("adults = %q, want coerced 1", req["adults"])
	}
}

func TestMapRejectsMalformedMappedDate(t *testing.T) {
	_, err := Map(intent.IntentHotelSearch, map[string]string{
		"destination": "Rome",
		"checkInDate": "July 1st",
	})
	if err == nil {
		t.Fatal("expected error for malformed mapped date")
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct{ in, want string }{
		{"CDG", "CDG"},
		{"cdg", "CDG"},
		{" lhr ", "LHR"},
		{"Paris", "CDG"},
		{"new york", "JFK"},
		{"NYC", "JFK"},
		{"Neverland", "Neverland"},
		{"  Neverland  ", "Neverland"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLocation(tt.in); got != tt.want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsLocationCode(t *testing.T) {
	if !IsLocationCode("JFK") || !IsLocationCode(" lax ") {
		t.Error("expected 3-letter tokens to be codes")
	}
	if IsLocationCode("Grand Canyon") || IsLocationCode("Paris") {
		t.Error("expected non-codes to be rejected")
	}
}
