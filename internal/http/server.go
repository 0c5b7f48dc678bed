// README: API gateway; builds the gin engine and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgen/internal/http/middleware"
	"tripgen/internal/metrics"
	"tripgen/internal/modules/planner"
	"tripgen/internal/modules/trip"
)

type ServerDeps struct {
	Planner     *planner.Service
	Trips       *trip.Service
	Logger      *zap.Logger
	CORSOrigins []string
}

type Server struct {
	planner     *planner.Service
	trips       *trip.Service
	logger      *zap.Logger
	corsOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		planner:     deps.Planner,
		trips:       deps.Trips,
		logger:      logger,
		corsOrigins: deps.CORSOrigins,
	}
}

// Routes returns the engine with the middleware chain and every route registered.
func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(s.logger),
		metrics.Middleware(),
		middleware.CORS(s.corsOrigins),
		middleware.Recovery(s.logger),
	)
	registerRoutes(r, s.planner, s.trips)
	return r
}
