// README: Normalizes heterogeneous provider payloads into Cards.
package cards

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripdesk/internal/types"
)

// Neutral provider payload shapes. Search adapters convert their wire
// formats into these before aggregation so the card construction stays
// total and provider-agnostic.

// FlightOffer is one bookable (or informational) flight result.
type FlightOffer struct {
	Origin      string
	Destination string
	DepartureAt string
	ArrivalAt   string
	Carrier     string
	Stops       int
	Price       types.Price
	BookingURL  string
}

// HotelOffer is one hotel with zero or more rate offers attached.
type HotelOffer struct {
	Name     string
	CityCode string
	Address  string
	CheckIn  string
	CheckOut string
	Rating   float32
	Price    types.Price
	HasOffer bool
	URL      string
}

// PlaceResult is one point-of-interest result.
type PlaceResult struct {
	Name    string
	Address string
	Rating  float32
	URL     string
}

// ActivitySuggestion is one proposed activity.
type ActivitySuggestion struct {
	Title    string
	Subtitle string
	Location string
	Timing   string
	Price    types.Price
	URL      string
}

// RentalOption is a ground-transport placeholder option.
type RentalOption struct {
	Pickup  string
	Dropoff string
	Vehicle string
	Price   types.Price
}

const (
	confidenceBookable    = 0.9
	confidenceInformative = 0.5
)

func newMetadata(provider string, bookable bool) Metadata {
	confidence := confidenceInformative
	if bookable {
		confidence = confidenceBookable
	}
	return Metadata{Provider: provider, Confidence: confidence, Timestamp: time.Now().UTC()}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func links(urls ...string) []string {
	var out []string
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

// FromFlightOffer always yields a card, with placeholders for whatever the
// provider left out.
func FromFlightOffer(o FlightOffer, provider string) Card {
	title := fmt.Sprintf("%s → %s", orNA(o.Origin), orNA(o.Destination))
	subtitle := orNA(o.Carrier)
	if o.Stops > 0 {
		subtitle = fmt.Sprintf("%s · %d stop(s)", subtitle, o.Stops)
	}
	return Card{
		ID:           uuid.NewString(),
		Type:         TypeFlight,
		Title:        title,
		Subtitle:     subtitle,
		Price:        o.Price,
		PriceDisplay: o.Price.Display(),
		Flight: &FlightDetails{
			Origin:      o.Origin,
			Destination: o.Destination,
			DepartureAt: orNA(o.DepartureAt),
			ArrivalAt:   o.ArrivalAt,
			Carrier:     o.Carrier,
			Stops:       o.Stops,
		},
		ExternalLinks: links(o.BookingURL),
		Metadata:      newMetadata(provider, o.Price.Known()),
	}
}

// FromHotelOffer yields exactly one card per hotel even when no offers are
// attached; a missing rate becomes the "Price on request" placeholder.
func FromHotelOffer(h HotelOffer, provider string) Card {
	return Card{
		ID:           uuid.NewString(),
		Type:         TypeHotel,
		Title:        orNA(h.Name),
		Subtitle:     orNA(h.CityCode),
		Price:        h.Price,
		PriceDisplay: h.Price.Display(),
		Stay: &StayDetails{
			Address:  h.Address,
			CityCode: h.CityCode,
			CheckIn:  h.CheckIn,
			CheckOut: h.CheckOut,
			Rating:   h.Rating,
		},
		ExternalLinks: links(h.URL),
		Metadata:      newMetadata(provider, h.HasOffer && h.Price.Known()),
	}
}

// FromPlace yields a card for a point of interest.
func FromPlace(p PlaceResult, provider string) Card {
	return Card{
		ID:           uuid.NewString(),
		Type:         TypePlace,
		Title:        orNA(p.Name),
		Subtitle:     orNA(p.Address),
		PriceDisplay: types.Price{}.Display(),
		Stay: &StayDetails{
			Address: p.Address,
			Rating:  p.Rating,
		},
		ExternalLinks: links(p.URL),
		Metadata:      newMetadata(provider, false),
	}
}

// FromActivity yields a card for an activity suggestion.
func FromActivity(a ActivitySuggestion, provider string) Card {
	return Card{
		ID:           uuid.NewString(),
		Type:         TypeActivity,
		Title:        orNA(a.Title),
		Subtitle:     a.Subtitle,
		Price:        a.Price,
		PriceDisplay: a.Price.Display(),
		Activity: &ActivityDetails{
			Location: a.Location,
			Timing:   a.Timing,
		},
		ExternalLinks: links(a.URL),
		Metadata:      newMetadata(provider, a.Price.Known()),
	}
}

// FromRentalOption yields a card for a ground-transport placeholder.
func FromRentalOption(r RentalOption, provider string) Card {
	return Card{
		ID:           uuid.NewString(),
		Type:         TypeRentalCar,
		Title:        fmt.Sprintf("%s (%s → %s)", orNA(r.Vehicle), orNA(r.Pickup), orNA(r.Dropoff)),
		Price:        r.Price,
		PriceDisplay: r.Price.Display(),
		Rental: &RentalDetails{
			Pickup:  r.Pickup,
			Dropoff: r.Dropoff,
			Vehicle: r.Vehicle,
		},
		Metadata: newMetadata(provider, false),
	}
}
