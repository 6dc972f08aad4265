package trip

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripdesk/internal/modules/cards"
	"tripdesk/internal/modules/mapping"
)

// The orchestrator calls providers from concurrent goroutines, so the
// fakes guard their recorders.
type fakeFlights struct {
	mu    sync.Mutex
	calls []mapping.Request
	err   error
}

func (f *fakeFlights) SearchFlights(ctx context.Context, req mapping.Request) ([]cards.Card, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return []cards.Card{cards.FromFlightOffer(cards.FlightOffer{
		Origin:      req["originLocationCode"],
		Destination: req["destinationLocationCode"],
	}, "fake")}, nil
}

// callByDate returns the recorded request with the given departure date.
func (f *fakeFlights) callByDate(date string) (mapping.Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c["departureDate"] == date {
			return c, true
		}
	}
	return nil, false
}

type fakeHotels struct {
	mu    sync.Mutex
	calls []mapping.Request
	err   error
}

func (f *fakeHotels) SearchHotels(ctx context.Context, req mapping.Request) ([]cards.Card, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return []cards.Card{cards.FromHotelOffer(cards.HotelOffer{
		Name: "Hotel " + req["cityCode"], CityCode: req["cityCode"],
	}, "fake")}, nil
}

type fakeActivities struct {
	err error
}

func (f *fakeActivities) SuggestActivities(ctx context.Context, location, date string) ([]cards.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []cards.Card{cards.FromActivity(cards.ActivitySuggestion{
		Title: "Tour of " + location, Location: location,
	}, "fake")}, nil
}

func roadTripPlan() Plan {
	return Plan{
		IsValid:           true,
		Origin:            "SFO",
		FinalDestination:  "LAS",
		IntermediateStops: []string{"LAS", "Grand Canyon"},
		Activities:        []string{"Explore Grand Canyon"},
		Dates:             Dates{StartDate: "2030-06-01", EndDate: "2030-06-08"},
	}
}

func TestExecuteFullPlan(t *testing.T) {
	flights := &fakeFlights{}
	hotels := &fakeHotels{}
	o := NewOrchestrator(flights, hotels, &fakeActivities{}, 3, 5, zap.NewNop())

	res := o.Execute(context.Background(), roadTripPlan())

	// Outbound SFO->LAS on the start date, return LAS->SFO on the end date.
	require.Len(t, flights.calls, 2)
	outbound, ok := flights.callByDate("2030-06-01")
	require.True(t, ok, "outbound leg missing")
	assert.Equal(t, "SFO", outbound["originLocationCode"])
	assert.Equal(t, "LAS", outbound["destinationLocationCode"])
	inbound, ok := flights.callByDate("2030-06-08")
	require.True(t, ok, "return leg missing")
	assert.Equal(t, "LAS", inbound["originLocationCode"])
	assert.Len(t, res.Flights, 2)

	// One hotel search for LAS only: the landmark stop is skipped and the
	// final destination deduplicates against the identical first stop.
	require.Len(t, hotels.calls, 1)
	assert.Equal(t, "LAS", hotels.calls[0]["cityCode"])

	// Plan activity plus provider suggestion.
	assert.Len(t, res.Activities, 2)
	assert.NotEmpty(t, res.RentalCars)
}

func TestExecuteHotelFailureIsIsolated(t *testing.T) {
	o := NewOrchestrator(&fakeFlights{}, &fakeHotels{err: errors.New("hotel api down")},
		&fakeActivities{}, 3, 5, zap.NewNop())

	res := o.Execute(context.Background(), roadTripPlan())

	assert.Empty(t, res.Hotels, "failed hotel search yields empty hotels")
	assert.NotEmpty(t, res.Flights, "flights must survive a hotel failure")
	assert.NotEmpty(t, res.Activities, "activities must survive a hotel failure")
}

func TestExecuteActivityFallback(t *testing.T) {
	o := NewOrchestrator(&fakeFlights{}, &fakeHotels{},
		&fakeActivities{err: errors.New("quota")}, 3, 5, zap.NewNop())

	plan := roadTripPlan()
	plan.Activities = nil
	res := o.Execute(context.Background(), plan)

	require.NotEmpty(t, res.Activities, "placeholder activities expected")
	assert.Equal(t, "placeholder", res.Activities[0].Metadata.Provider)
}

func TestExecuteSkipsReturnWhenLoop(t *testing.T) {
	flights := &fakeFlights{}
	o := NewOrchestrator(flights, &fakeHotels{}, &fakeActivities{}, 3, 5, zap.NewNop())

	plan := roadTripPlan()
	plan.FinalDestination = "SFO"
	plan.IntermediateStops = []string{"LAS"}
	o.Execute(context.Background(), plan)

	require.Len(t, flights.calls, 1, "loop plans get no return leg")
}

func TestExecuteSkipsFlightsWithoutCodes(t *testing.T) {
	flights := &fakeFlights{}
	o := NewOrchestrator(flights, &fakeHotels{}, &fakeActivities{}, 3, 5, zap.NewNop())

	plan := Plan{
		IsValid:           true,
		Origin:            "Smallville",
		FinalDestination:  "Neverland",
		IntermediateStops: []string{"Somewhere"},
		Dates:             Dates{StartDate: "2030-06-01", EndDate: "2030-06-08"},
	}
	res := o.Execute(context.Background(), plan)

	assert.Empty(t, flights.calls)
	assert.Empty(t, res.Flights)
}
