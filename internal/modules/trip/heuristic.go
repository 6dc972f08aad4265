// README: Deterministic fallback for the known road-trip request pattern.
package trip

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripdesk/internal/ai"
	"tripdesk/internal/modules/intent"
	"tripdesk/internal/modules/mapping"
)

// landmarks the road-trip rule recognizes. A deliberately narrow, named
// special case: the rule handles "city, hub city, landmark" road trips and
// nothing more general.
var landmarks = []string{
	"grand canyon",
	"yosemite",
	"yellowstone",
	"niagara falls",
	"death valley",
	"monument valley",
}

// roadTripStrategy recognizes a three-stop pattern by substring detection:
// an origin city, a hub city reachable by air, and a named landmark visited
// by car from the hub. It emits a complete plan with placeholder
// near-future dates so the orchestrator always has something to work with.
type roadTripStrategy struct {
	log *zap.Logger
}

func (s *roadTripStrategy) Name() string { return "road_trip_rule" }

func (s *roadTripStrategy) Parse(ctx context.Context, message string, params intent.Parameters, history []ai.Message, timeContext string) (Plan, bool) {
	lower := strings.ToLower(message)

	var landmark string
	for _, lm := range landmarks {
		if strings.Contains(lower, lm) {
			landmark = titleCase(lm)
			break
		}
	}
	if landmark == "" {
		return Plan{}, false
	}

	cities := citiesInOrder(message)
	if len(cities) < 2 {
		return Plan{}, false
	}
	origin := cities[0].code
	hub := cities[1].code
	if origin == hub {
		return Plan{}, false
	}

	start := time.Now().AddDate(0, 0, 14)
	end := start.AddDate(0, 0, 7)

	return Plan{
		Origin:            origin,
		FinalDestination:  hub,
		IntermediateStops: []string{hub, landmark},
		TransportationLegs: []Leg{
			{Mode: "flight", From: origin, To: hub},
			{Mode: "car", From: hub, To: landmark},
			{Mode: "car", From: landmark, To: hub},
			{Mode: "flight", From: hub, To: origin},
		},
		Activities: []string{"Explore " + landmark},
		Dates: Dates{
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		},
	}, true
}

type cityHit struct {
	pos  int
	code string
}

// citiesInOrder finds known city mentions and bare airport-code tokens in
// the message, ordered by where they appear, so "from A to B" resolves A
// as origin.
func citiesInOrder(message string) []cityHit {
	lower := strings.ToLower(message)
	var hits []cityHit
	seen := map[string]bool{}
	for name, code := range mapping.KnownCities() {
		idx := strings.Index(lower, name)
		if idx < 0 || seen[code] {
			continue
		}
		seen[code] = true
		hits = append(hits, cityHit{pos: idx, code: code})
	}

	// Code tokens like "SFO" are kept verbatim. Only uppercase tokens
	// count: lowercase 3-letter words ("the", "via") are not codes.
	pos := 0
	for _, tok := range strings.Fields(message) {
		idx := strings.Index(message[pos:], tok) + pos
		pos = idx + len(tok)
		code := strings.Trim(tok, ".,;:!?()\"'")
		if !mapping.IsLocationCode(code) || code != strings.ToUpper(code) || seen[code] {
			continue
		}
		seen[code] = true
		hits = append(hits, cityHit{pos: idx, code: code})
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	return hits
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
