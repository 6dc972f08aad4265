// README: Hotel-offer search mapped onto result cards.
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

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			Name     string  `json:"name"`
			CityCode string  `json:"cityCode"`
			Rating   string  `json:"rating"`
			Address  struct {
				Lines []string `json:"lines"`
			} `json:"address"`
		} `json:"hotel"`
		Offers []struct {
			CheckInDate  string `json:"checkInDate"`
			CheckOutDate string `json:"checkOutDate"`
			Price        struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

// SearchHotels runs a hotel-offer search. A malformed or empty payload is
// tolerated as zero results; hotels with no offers still produce a card
// with a price placeholder.
func (c *Client) SearchHotels(ctx context.Context, req mapping.Request) ([]cards.Card, error) {
	query := url.Values{}
	for k, v := range req {
		if k == "query" {
			continue // free-text refinement is not a provider parameter
		}
		query.Set(k, v)
	}

	var out []cards.Card
	if c.cache.Get(ctx, "hotels", req, &out) {
		return out, nil
	}

	var resp hotelOffersResponse
	if err := c.get(ctx, "/v3/shopping/hotel-offers", query, &resp); err != nil {
		return nil, err
	}

	for _, entry := range resp.Data {
		payload := cards.HotelOffer{
			Name:     entry.Hotel.Name,
			CityCode: entry.Hotel.CityCode,
		}
		if len(entry.Hotel.Address.Lines) > 0 {
			payload.Address = entry.Hotel.Address.Lines[0]
		}
		if rating, err := strconv.ParseFloat(entry.Hotel.Rating, 32); err == nil {
			payload.Rating = float32(rating)
		}
		if len(entry.Offers) > 0 {
			best := entry.Offers[0]
			payload.CheckIn = best.CheckInDate
			payload.CheckOut = best.CheckOutDate
			if amount, err := strconv.ParseFloat(best.Price.Total, 64); err == nil && best.Price.Currency != "" {
				payload.Price = types.Price{Amount: amount, Currency: best.Price.Currency}
				payload.HasOffer = true
			}
		}
		out = append(out, cards.FromHotelOffer(payload, "amadeus"))
	}

	c.log.Debug("hotel search completed",
		zap.String("cityCode", req["cityCode"]),
		zap.Int("hotels", len(out)))

	c.cache.Set(ctx, "hotels", req, out)
	return out, nil
}
