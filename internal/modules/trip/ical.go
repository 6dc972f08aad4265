// README: iCal export of a trip plan.
package trip

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/samber/lo"

	"tripdesk/internal/modules/mapping"
)

const icalDateLayout = "2006-01-02"

// ExportICal renders a valid plan as an iCalendar document: one all-day
// event per transportation leg and one spanning stay event per city a
// traveller sleeps in (the same code-resolvable set the hotel search
// covers). The plan only carries a date range, so leg events all land on
// the start date in travel order.
func ExportICal(plan Plan) (string, error) {
	if !plan.IsValid {
		return "", fmt.Errorf("cannot export an invalid plan")
	}
	start, err := time.Parse(icalDateLayout, plan.Dates.StartDate)
	if err != nil {
		return "", fmt.Errorf("plan start date: %w", err)
	}
	end, err := time.Parse(icalDateLayout, plan.Dates.EndDate)
	if err != nil {
		return "", fmt.Errorf("plan end date: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tripdesk//itinerary//EN")

	for i, leg := range plan.TransportationLegs {
		event := cal.AddEvent(fmt.Sprintf("leg-%d@tripdesk", i))
		event.SetSummary(fmt.Sprintf("%s: %s → %s", leg.Mode, leg.From, leg.To))
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetDtStampTime(time.Now().UTC())
	}

	for _, city := range stayCities(plan) {
		stay := cal.AddEvent(fmt.Sprintf("stay-%s@tripdesk", city))
		stay.SetSummary("Stay in " + city)
		stay.SetAllDayStartAt(start)
		stay.SetAllDayEndAt(end.AddDate(0, 0, 1))
		stay.SetDtStampTime(time.Now().UTC())
	}

	return cal.Serialize(), nil
}

// stayCities lists the cities a traveller sleeps in: every code-resolvable
// intermediate stop plus the final destination when it differs from the
// origin. Landmark-style stops carry no hotel stay.
func stayCities(plan Plan) []string {
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
	return lo.Uniq(cities)
}
