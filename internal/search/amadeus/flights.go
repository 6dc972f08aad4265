// README: Flight-offer search mapped onto result cards.
package amadeus

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"tripdesk/internal/modules/cards"
	"tripdesk/internal/modules/mapping"
	"tripdesk/internal/types"
)

type flightOffersResponse struct {
	Data []struct {
		Itineraries []struct {
			Segments []struct {
				Departure struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"arrival"`
				CarrierCode string `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"data"`
}

// SearchFlights runs a flight-offer search for the mapped request and
// aggregates the payload into flight cards. Provider diagnostics surface
// as *APIError; everything else is a transport error.
func (c *Client) SearchFlights(ctx context.Context, req mapping.Request) ([]cards.Card, error) {
	query := url.Values{}
	for k, v := range req {
		query.Set(k, v)
	}

	var out []cards.Card
	if c.cache.Get(ctx, "flights", req, &out) {
		return out, nil
	}

	var resp flightOffersResponse
	if err := c.get(ctx, "/v2/shopping/flight-offers", query, &resp); err != nil {
		return nil, err
	}

	for _, offer := range resp.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		segments := offer.Itineraries[0].Segments
		first, last := segments[0], segments[len(segments)-1]

		payload := cards.FlightOffer{
			Origin:      first.Departure.IataCode,
			Destination: last.Arrival.IataCode,
			DepartureAt: first.Departure.At,
			ArrivalAt:   last.Arrival.At,
			Carrier:     first.CarrierCode,
			Stops:       len(segments) - 1,
		}
		if amount, err := strconv.ParseFloat(offer.Price.Total, 64); err == nil && offer.Price.Currency != "" {
			payload.Price = types.Price{Amount: amount, Currency: offer.Price.Currency}
		}
		out = append(out, cards.FromFlightOffer(payload, "amadeus"))
	}

	c.log.Debug("flight search completed",
		zap.String("origin", req["originLocationCode"]),
		zap.String("destination", req["destinationLocationCode"]),
		zap.Int("offers", len(out)))

	c.cache.Set(ctx, "flights", req, out)
	return out, nil
}
