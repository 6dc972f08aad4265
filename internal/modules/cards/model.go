// README: Unified result-card model returned to the client.
package cards

import (
	"time"

	"tripdesk/internal/types"
)

// Type discriminates which detail block of a Card is populated.
type Type string

const (
	TypeFlight    Type = "flight"
	TypeHotel     Type = "hotel"
	TypePlace     Type = "place"
	TypeRentalCar Type = "rental_car"
	TypeActivity  Type = "activity"
)

// Metadata carries provenance for a card. Confidence is advisory only;
// nothing filters on it.
type Metadata struct {
	Provider   string    `json:"provider"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// FlightDetails is populated for TypeFlight cards.
type FlightDetails struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DepartureAt string `json:"departureAt"`
	ArrivalAt   string `json:"arrivalAt,omitempty"`
	Carrier     string `json:"carrier,omitempty"`
	Stops       int    `json:"stops"`
}

// StayDetails is populated for TypeHotel and TypePlace cards.
type StayDetails struct {
	Address  string  `json:"address,omitempty"`
	CityCode string  `json:"cityCode,omitempty"`
	CheckIn  string  `json:"checkIn,omitempty"`
	CheckOut string  `json:"checkOut,omitempty"`
	Rating   float32 `json:"rating,omitempty"`
}

// RentalDetails is populated for TypeRentalCar cards.
type RentalDetails struct {
	Pickup  string `json:"pickup"`
	Dropoff string `json:"dropoff"`
	Vehicle string `json:"vehicle,omitempty"`
}

// ActivityDetails is populated for TypeActivity cards.
type ActivityDetails struct {
	Location string `json:"location,omitempty"`
	Timing   string `json:"timing,omitempty"`
}

// Card is one display-ready search result. ID is unique within a response;
// Type determines which detail pointer is set.
type Card struct {
	ID            string           `json:"id"`
	Type          Type             `json:"type"`
	Title         string           `json:"title"`
	Subtitle      string           `json:"subtitle,omitempty"`
	Price         types.Price      `json:"price"`
	PriceDisplay  string           `json:"priceDisplay"`
	Flight        *FlightDetails   `json:"flight,omitempty"`
	Stay          *StayDetails     `json:"stay,omitempty"`
	Rental        *RentalDetails   `json:"rental,omitempty"`
	Activity      *ActivityDetails `json:"activity,omitempty"`
	ExternalLinks []string         `json:"externalLinks,omitempty"`
	Metadata      Metadata         `json:"metadata"`
}
