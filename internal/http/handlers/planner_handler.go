// README: Place-list and travel-plan handlers backed by the completion gateway.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tripgen/internal/modules/planner"
)

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

// PlaceList handles GET /api/place-list.
func (h *PlannerHandler) PlaceList(c *gin.Context) {
	places, err := h.planner.ListPopularDestinations(c.Request.Context())
	if err != nil {
		writePlannerError(c, err, msgPlaceListFailed)
		return
	}
	writeJSON(c, http.StatusOK, places)
}

// TravelPlan handles GET /api/travel-plan?city=&country=&days=.
func (h *PlannerHandler) TravelPlan(c *gin.Context) {
	req := planner.PlanRequest{
		City:    c.Query("city"),
		Country: c.Query("country"),
		Days:    parseDays(c.Query("days")),
	}

	itinerary, err := h.planner.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		writePlannerError(c, err, msgTravelPlanFailed)
		return
	}
	writeJSON(c, http.StatusOK, itinerary)
}

// parseDays returns 0 for anything that is not an integer; the planner
// substitutes its default for values below 1.
func parseDays(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
