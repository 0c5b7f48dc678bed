// README: HTTP route table.
package http

import (
	"github.com/gin-gonic/gin"

	"tripgen/internal/http/handlers"
	"tripgen/internal/metrics"
	"tripgen/internal/modules/planner"
	"tripgen/internal/modules/trip"
)

func registerRoutes(r *gin.Engine, plannerService *planner.Service, tripService *trip.Service) {
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	plannerHandler := handlers.NewPlannerHandler(plannerService)
	r.GET("/api/place-list", plannerHandler.PlaceList)
	r.GET("/api/travel-plan", plannerHandler.TravelPlan)

	tripHandler := handlers.NewTripHandler(tripService)
	r.POST("/saveTrips", tripHandler.Create)
	r.GET("/saveTrips", tripHandler.List)
	r.DELETE("/saveTrips/:id", tripHandler.Delete)
}
