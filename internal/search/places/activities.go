// README: Activity suggestions derived from Places results.
package places

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"tripdesk/internal/modules/cards"
)

// SuggestActivities proposes things to do at a destination by reshaping a
// Places attraction search into activity cards. date is informational and
// lands in the activity timing; the Places API itself has no date filter.
func (s *Service) SuggestActivities(ctx context.Context, location, date string) ([]cards.Card, error) {
	found, err := s.SearchPlaces(ctx, "top tourist attractions", location)
	if err != nil {
		return nil, fmt.Errorf("activity search: %w", err)
	}

	timing := "Flexible"
	if date != "" {
		timing = date
	}

	return lo.Map(found, func(place cards.Card, _ int) cards.Card {
		suggestion := cards.ActivitySuggestion{
			Title:    "Visit " + place.Title,
			Subtitle: place.Subtitle,
			Location: location,
			Timing:   timing,
		}
		if len(place.ExternalLinks) > 0 {
			suggestion.URL = place.ExternalLinks[0]
		}
		return cards.FromActivity(suggestion, "google_places")
	}), nil
}
