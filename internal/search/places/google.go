// README: Google Places text search mapped onto result cards.
package places

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"tripdesk/internal/modules/cards"
)

const (
	minRating  = 3.5
	maxResults = 5
)

// Service handles interactions with the Google Places API.
type Service struct {
	client *maps.Client
	memo   *gocache.Cache
	log    *zap.Logger
}

// NewService creates a Service with the given API key. Responses are
// memoized in-process for a few minutes; Places quotas are per-request.
func NewService(apiKey string, log *zap.Logger) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{
		client: client,
		memo:   gocache.New(5*time.Minute, 10*time.Minute),
		log:    log,
	}, nil
}

// SearchPlaces finds points of interest matching the query near location
// and aggregates them into place cards. Low-rated results are dropped and
// the list is capped to keep responses readable.
func (s *Service) SearchPlaces(ctx context.Context, query, location string) ([]cards.Card, error) {
	fullQuery := query
	if location != "" {
		fullQuery = fmt.Sprintf("%s in %s", query, location)
	}

	if hit, ok := s.memo.Get(fullQuery); ok {
		return hit.([]cards.Card), nil
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    fullQuery,
		Language: "en",
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var out []cards.Card
	for _, result := range resp.Results {
		if result.Rating > 0 && result.Rating < minRating {
			continue
		}
		out = append(out, cards.FromPlace(cards.PlaceResult{
			Name:    result.Name,
			Address: result.FormattedAddress,
			Rating:  result.Rating,
			URL:     "https://www.google.com/maps/place/?q=place_id:" + result.PlaceID,
		}, "google_places"))
		if len(out) >= maxResults {
			break
		}
	}

	s.log.Debug("place search completed", zap.String("query", fullQuery), zap.Int("results", len(out)))
	s.memo.Set(fullQuery, out, gocache.DefaultExpiration)
	return out, nil
}
