// README: Search-provider contracts consumed by handlers and the trip orchestrator.
package search

import (
	"context"

	"tripdesk/internal/modules/cards"
	"tripdesk/internal/modules/mapping"
)

// FlightProvider searches flights from a mapped, defaulted request.
type FlightProvider interface {
	SearchFlights(ctx context.Context, req mapping.Request) ([]cards.Card, error)
}

// HotelProvider searches accommodation from a mapped, defaulted request.
type HotelProvider interface {
	SearchHotels(ctx context.Context, req mapping.Request) ([]cards.Card, error)
}

// PlaceProvider searches points of interest near a location.
type PlaceProvider interface {
	SearchPlaces(ctx context.Context, query, location string) ([]cards.Card, error)
}

// ActivityProvider proposes activities for a destination.
type ActivityProvider interface {
	SuggestActivities(ctx context.Context, location, date string) ([]cards.Card, error)
}
