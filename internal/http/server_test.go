package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgen/internal/ai"
	"tripgen/internal/http/middleware"
	"tripgen/internal/modules/planner"
	"tripgen/internal/modules/trip"
)

type echoProvider struct{ reply string }

func (echoProvider) Name() string { return "echo" }

func (p echoProvider) Complete(context.Context, ai.ChatRequest) (string, error) {
	return p.reply, nil
}

func newTestServer() http.Handler {
	gin.SetMode(gin.TestMode)
	return NewServer(ServerDeps{
		Planner:     planner.NewService(echoProvider{reply: `{"city":["Rome"],"country":["Italy"]}`}, 0, nil),
		Trips:       trip.NewService(trip.NewMemoryStore()),
		CORSOrigins: []string{"*"},
	}).Routes()
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRoutes_Health(t *testing.T) {
	w := serve(newTestServer(), http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRoutes_Registered(t *testing.T) {
	h := newTestServer()

	w := serve(h, http.MethodGet, "/api/place-list")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"city":["Rome"],"country":["Italy"]}`, w.Body.String())

	w = serve(h, http.MethodGet, "/saveTrips")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = serve(h, http.MethodDelete, "/saveTrips/000000000000000000000000")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(h, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_MetricsExposition(t *testing.T) {
	h := newTestServer()
	serve(h, http.MethodGet, "/health")

	w := serve(h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `tripgen_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/saveTrips", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	newTestServer().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
