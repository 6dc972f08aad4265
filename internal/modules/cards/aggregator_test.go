package cards

import (
	"testing"

	"tripdesk/internal/types"
)

func TestFromHotelOfferWithoutOffers(t *testing.T) {
	card := FromHotelOffer(HotelOffer{Name: "Hotel Lutetia", CityCode: "CDG"}, "amadeus")

	if card.Type != TypeHotel {
		t.Fatalf("type = %s", card.Type)
	}
	if card.PriceDisplay != "Price on request" {
		t.Fatalf("price display = %q, want placeholder", card.PriceDisplay)
	}
	if card.Metadata.Confidence >= confidenceBookable {
		t.Fatal("offer-less hotel should carry the lower confidence")
	}
	if card.ID == "" {
		t.Fatal("card must always get an id")
	}
}

func TestFromFlightOfferBookable(t *testing.T) {
	card := FromFlightOffer(FlightOffer{
		Origin: "JFK", Destination: "CDG", DepartureAt: "2030-06-01T08:00",
		Carrier: "AF", Price: types.Price{Amount: 540.20, Currency: "USD"},
	}, "amadeus")

	if card.Title != "JFK → CDG" {
		t.Fatalf("title = %q", card.Title)
	}
	if card.Metadata.Confidence != confidenceBookable {
		t.Fatalf("confidence = %v", card.Metadata.Confidence)
	}
	if card.PriceDisplay != "540.20 USD" {
		t.Fatalf("price display = %q", card.PriceDisplay)
	}
	if card.Flight == nil || card.Flight.Origin != "JFK" {
		t.Fatal("flight details missing")
	}
}

func TestFromFlightOfferEmptyPayloadStillYieldsCard(t *testing.T) {
	card := FromFlightOffer(FlightOffer{}, "amadeus")
	if card.Title != "N/A → N/A" {
		t.Fatalf("title = %q", card.Title)
	}
	if card.PriceDisplay != "Price on request" {
		t.Fatalf("price display = %q", card.PriceDisplay)
	}
}

func TestCardIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		card := FromPlace(PlaceResult{Name: "Louvre"}, "google_places")
		if seen[card.ID] {
			t.Fatal("duplicate card id")
		}
		seen[card.ID] = true
	}
}
