// README: Planner request/response types and failure taxonomy.
package planner

import (
	"errors"
	"strings"
)

const (
	DefaultCity    = "Bengaluru"
	DefaultCountry = "India"
	DefaultDays    = 3

	// MaxPlaces caps each list returned by ListPopularDestinations.
	MaxPlaces = 10
)

var (
	ErrUpstream           = errors.New("completion upstream failed")
	ErrInvalidModelOutput = errors.New("model returned invalid JSON")
)

// PlaceList is the transient suggestion list for the destination picker.
type PlaceList struct {
	City    []string `json:"city"`
	Country []string `json:"country"`
}

// PlanRequest holds the user inputs for GenerateItinerary. Zero values select defaults.
type PlanRequest struct {
	City    string
	Country string
	Days    int
}

func (r PlanRequest) withDefaults() PlanRequest {
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)
	if r.City == "" {
		r.City = DefaultCity
	}
	if r.Country == "" {
		r.Country = DefaultCountry
	}
	if r.Days < 1 {
		r.Days = DefaultDays
	}
	return r
}
