// README: Intent labels and the extracted-parameter bag.
package intent

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentFlightSearch    Intent = "flight_search"
	IntentHotelSearch     Intent = "hotel_search"
	IntentPlaceSearch     Intent = "place_search"
	IntentTripPlanning    Intent = "trip_planning"
	IntentGeneralQuestion Intent = "general_question"
)

// Parse returns the recognized intent for a label, or general_question
// (and false) for anything else. Unknown labels never propagate.
func Parse(label string) (Intent, bool) {
	switch Intent(strings.TrimSpace(strings.ToLower(label))) {
	case IntentFlightSearch:
		return IntentFlightSearch, true
	case IntentHotelSearch:
		return IntentHotelSearch, true
	case IntentPlaceSearch:
		return IntentPlaceSearch, true
	case IntentTripPlanning:
		return IntentTripPlanning, true
	case IntentGeneralQuestion:
		return IntentGeneralQuestion, true
	}
	return IntentGeneralQuestion, false
}

// Parameters carries everything the extractor pulled from a message.
// All fields except Intent are optional; which ones are meaningful depends
// on the intent.
type Parameters struct {
	Intent       Intent   `json:"intent"`
	Departure    string   `json:"departure,omitempty"`
	Destination  string   `json:"destination,omitempty"`
	OutboundDate string   `json:"outboundDate,omitempty"`
	ReturnDate   string   `json:"returnDate,omitempty"`
	Adults       int      `json:"adults,omitempty"`
	Children     int      `json:"children,omitempty"`
	TravelClass  string   `json:"travelClass,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Query        string   `json:"query,omitempty"`
	CheckInDate  string   `json:"checkInDate,omitempty"`
	CheckOutDate string   `json:"checkOutDate,omitempty"`
	Destinations []string `json:"destinations,omitempty"`
}

// UnmarshalJSON tolerates models returning counts as strings ("2" vs 2).
func (p *Parameters) UnmarshalJSON(data []byte) error {
	type alias Parameters
	aux := struct {
		*alias
		Adults   any `json:"adults,omitempty"`
		Children any `json:"children,omitempty"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Adults = coerceInt(aux.Adults)
	p.Children = coerceInt(aux.Children)
	return nil
}

func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return 0
}
