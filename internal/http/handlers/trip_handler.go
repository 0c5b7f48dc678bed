// README: Saved-trip handlers (create, list, delete).
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/modules/trip"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

// Create handles POST /saveTrips.
func (h *TripHandler) Create(c *gin.Context) {
	var in trip.Trip
	if err := c.ShouldBindJSON(&in); err != nil {
		writeTripError(c, fmt.Errorf("%w: %w", trip.ErrValidation, err), msgTripAddFailed)
		return
	}

	created, err := h.trips.Create(c.Request.Context(), in)
	if err != nil {
		writeTripError(c, err, msgTripAddFailed)
		return
	}
	writeJSON(c, http.StatusCreated, tripResponse{Message: msgTripCreated, Trip: created})
}

// List handles GET /saveTrips.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		writeTripError(c, err, msgTripListFailed)
		return
	}
	writeJSON(c, http.StatusOK, trips)
}

// Delete handles DELETE /saveTrips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	deleted, err := h.trips.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeTripError(c, err, msgTripDeleteFailed)
		return
	}
	writeJSON(c, http.StatusOK, tripResponse{Message: msgTripDeleted, Trip: deleted})
}
