// README: Executes a trip plan against the search providers with per-step fault isolation.
package trip

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"tripdesk/internal/modules/cards"
	"tripdesk/internal/modules/mapping"
	"tripdesk/internal/search"
)

// Results groups the orchestrated sub-search outcomes. Every slice
// defaults to empty; a failed sub-search never nils out its siblings.
type Results struct {
	Flights    []cards.Card `json:"flights"`
	Hotels     []cards.Card `json:"hotels"`
	RentalCars []cards.Card `json:"rentalCars"`
	Activities []cards.Card `json:"activities"`
}

// Orchestrator fans a materialized Plan out into provider calls.
type Orchestrator struct {
	flights    search.FlightProvider
	hotels     search.HotelProvider
	activities search.ActivityProvider
	flightCap  int
	hotelCap   int
	log        *zap.Logger
}

func NewOrchestrator(flights search.FlightProvider, hotels search.HotelProvider, activities search.ActivityProvider, flightCap, hotelCap int, log *zap.Logger) *Orchestrator {
	if flightCap <= 0 {
		flightCap = 3
	}
	if hotelCap <= 0 {
		hotelCap = 5
	}
	return &Orchestrator{
		flights:    flights,
		hotels:     hotels,
		activities: activities,
		flightCap:  flightCap,
		hotelCap:   hotelCap,
		log:        log,
	}
}

// Execute runs the sub-searches for a plan. Flights, hotels, and
// activities have no data dependency on each other once the plan exists,
// so they run concurrently; each failure is absorbed locally into an
// empty slice for that step alone.
func (o *Orchestrator) Execute(ctx context.Context, plan Plan) Results {
	var (
		wg                 sync.WaitGroup
		outbound, inbound  []cards.Card
		hotels, activities []cards.Card
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		outbound = o.searchOutbound(ctx, plan)
	}()
	go func() {
		defer wg.Done()
		inbound = o.searchReturn(ctx, plan)
	}()
	go func() {
		defer wg.Done()
		hotels = o.searchHotels(ctx, plan)
	}()
	go func() {
		defer wg.Done()
		activities = o.searchActivities(ctx, plan)
	}()
	wg.Wait()

	flights := append(outbound, inbound...)

	return Results{
		Flights:    emptyNotNil(lo.Slice(flights, 0, o.flightCap*2)),
		Hotels:     emptyNotNil(lo.Slice(hotels, 0, o.hotelCap)),
		RentalCars: groundTransportOptions(plan),
		Activities: emptyNotNil(activities),
	}
}

// searchOutbound covers origin → first intermediate stop (or the final
// destination when there are no stops) on the earliest plan date.
func (o *Orchestrator) searchOutbound(ctx context.Context, plan Plan) []cards.Card {
	target := plan.FinalDestination
	if len(plan.IntermediateStops) > 0 {
		target = plan.IntermediateStops[0]
	}
	return o.searchFlight(ctx, plan.Origin, target, plan.Dates.StartDate, "outbound")
}

// searchReturn covers final destination → origin on the latest plan date.
// Skipped entirely for loop-free plans where origin and destination match.
func (o *Orchestrator) searchReturn(ctx context.Context, plan Plan) []cards.Card {
	from := mapping.NormalizeLocation(plan.FinalDestination)
	to := mapping.NormalizeLocation(plan.Origin)
	if from == to {
		return nil
	}
	return o.searchFlight(ctx, plan.FinalDestination, plan.Origin, plan.Dates.EndDate, "return")
}

func (o *Orchestrator) searchFlight(ctx context.Context, from, to, date, leg string) []cards.Card {
	origin := mapping.NormalizeLocation(from)
	dest := mapping.NormalizeLocation(to)
	if !mapping.IsLocationCode(origin) || !mapping.IsLocationCode(dest) {
		o.log.Debug("skipping flight leg without location codes",
			zap.String("leg", leg), zap.String("from", from), zap.String("to", to))
		return nil
	}

	req := mapping.Request{
		"originLocationCode":      origin,
		"destinationLocationCode": dest,
		"adults":                  "1",
		"currencyCode":            "USD",
		"max":                     "20",
	}
	if date != "" {
		req["departureDate"] = date
	}

	found, err := o.flights.SearchFlights(ctx, req)
	if err != nil {
		o.log.Warn("flight sub-search failed", zap.String("leg", leg), zap.Error(err))
		return nil
	}
	return lo.Slice(found, 0, o.flightCap)
}

// searchHotels runs one search per code-resolvable stop plus the final
// destination. Landmark-style stops are skipped here but stay available
// to the activity search.
func (o *Orchestrator) searchHotels(ctx context.Context, plan Plan) []cards.Card {
	var cities []string
	for _, stop := range plan.IntermediateStops {
		code := mapping.NormalizeLocation(stop)
		if mapping.IsLocationCode(code) {
			cities = append(cities, code)
		}
	}
	final := mapping.NormalizeLocation(plan.FinalDestination)
	if mapping.IsLocationCode(final) && final != mapping.NormalizeLocation(plan.Origin) {
		cities = append(cities, final)
	}
	cities = lo.Uniq(cities)

	var out []cards.Card
	for _, city := range cities {
		req := mapping.Request{"cityCode": city, "adults": "1", "radius": "5", "radiusUnit": "KM"}
		if plan.Dates.StartDate != "" && plan.Dates.EndDate != "" {
			req["checkInDate"] = plan.Dates.StartDate
			req["checkOutDate"] = plan.Dates.EndDate
		}
		found, err := o.hotels.SearchHotels(ctx, req)
		if err != nil {
			o.log.Warn("hotel sub-search failed", zap.String("city", city), zap.Error(err))
			continue
		}
		out = append(out, found...)
	}
	return out
}

// searchActivities combines the plan's own activity notes with provider
// suggestions for the primary destination, falling back to deterministic
// placeholders so the section is never empty.
func (o *Orchestrator) searchActivities(ctx context.Context, plan Plan) []cards.Card {
	out := lo.Map(plan.Activities, func(name string, _ int) cards.Card {
		return cards.FromActivity(cards.ActivitySuggestion{
			Title:    name,
			Location: plan.FinalDestination,
			Timing:   "Flexible",
		}, "trip_plan")
	})

	suggested, err := o.activities.SuggestActivities(ctx, plan.FinalDestination, plan.Dates.StartDate)
	if err != nil {
		o.log.Warn("activity sub-search failed", zap.String("destination", plan.FinalDestination), zap.Error(err))
	}
	out = append(out, suggested...)

	if len(out) == 0 {
		out = placeholderActivities(plan.FinalDestination)
	}
	return out
}

func placeholderActivities(destination string) []cards.Card {
	titles := []string{
		fmt.Sprintf("Walking tour of %s", destination),
		fmt.Sprintf("Local food experience in %s", destination),
	}
	return lo.Map(titles, func(title string, _ int) cards.Card {
		return cards.FromActivity(cards.ActivitySuggestion{
			Title:    title,
			Location: destination,
			Timing:   "Flexible",
		}, "placeholder")
	})
}

// groundTransportOptions returns static placeholder rental options scoped
// to the plan's endpoints. No external provider is wired for ground
// transport; these keep the itinerary section populated.
func groundTransportOptions(plan Plan) []cards.Card {
	pickup := plan.FinalDestination
	if len(plan.IntermediateStops) > 0 {
		pickup = plan.IntermediateStops[0]
	}
	options := []cards.RentalOption{
		{Pickup: pickup, Dropoff: plan.FinalDestination, Vehicle: "Compact car"},
		{Pickup: pickup, Dropoff: plan.FinalDestination, Vehicle: "SUV"},
	}
	return lo.Map(options, func(opt cards.RentalOption, _ int) cards.Card {
		return cards.FromRentalOption(opt, "placeholder")
	})
}

func emptyNotNil(in []cards.Card) []cards.Card {
	if in == nil {
		return []cards.Card{}
	}
	return in
}
