// README: Itinerary export handler (trip plan to iCalendar).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/internal/modules/trip"
)

type ItineraryHandler struct{}

func NewItineraryHandler() *ItineraryHandler {
	return &ItineraryHandler{}
}

// Export handles POST /api/assistant/itinerary/export. The body is a trip
// plan as returned inside a trip-planning envelope; the response is an
// iCalendar document.
func (h *ItineraryHandler) Export(c *gin.Context) {
	var plan trip.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if plan.Origin == "" || plan.FinalDestination == "" {
		writeError(c, http.StatusBadRequest, "plan needs an origin and a final destination")
		return
	}
	// The flag is internal; a posted plan is exportable if it has the fields.
	plan.IsValid = true

	doc, err := trip.ExportICal(plan)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="itinerary.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}
