// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/modules/planner"
	"tripgen/internal/modules/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

type tripResponse struct {
	Message string     `json:"message"`
	Trip    *trip.Trip `json:"trip"`
}

const (
	msgInvalidModelJSON = "Model returned invalid JSON"
	msgTravelPlanFailed = "Failed to generate travel plan"
	msgPlaceListFailed  = "Failed to fetch place list"

	msgTripCreated      = "Trip created successfully."
	msgTripDeleted      = "Trip has been deleted successfully."
	msgTripNotFound     = "Trip not found."
	msgTripAddFailed    = "Failed to add trip."
	msgTripListFailed   = "Failed to get trips."
	msgTripDeleteFailed = "Failed to delete trip."
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writePlannerError answers a failed completion. upstreamMsg names the operation
// that failed; the cause is attached to the context for the access log.
func writePlannerError(c *gin.Context, err error, upstreamMsg string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, planner.ErrInvalidModelOutput):
		writeError(c, http.StatusInternalServerError, msgInvalidModelJSON)
	default:
		writeError(c, http.StatusInternalServerError, upstreamMsg)
	}
}

func writeTripError(c *gin.Context, err error, fallbackMsg string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, trip.ErrNotFound):
		writeError(c, http.StatusNotFound, msgTripNotFound)
	default:
		writeError(c, http.StatusInternalServerError, fallbackMsg)
	}
}
