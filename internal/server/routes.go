package server

import (
	"context"
	"log/slog"
	"net/http"

	"planets-proxy/internal/middleware"
	"planets-proxy/internal/planet"
	planetHandlers "planets-proxy/internal/planet/handlers"
	serverHandlers "planets-proxy/internal/server/handlers"
	"planets-proxy/internal/shared/config"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Routes struct {
	planetService *planet.Service
	config        *config.Config
	logger        *slog.Logger
}

func NewRoutes(planetService *planet.Service, cfg *config.Config, logger *slog.Logger) *Routes {
	return &Routes{
		planetService: planetService,
		config:        cfg,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.config.Server.Environment)
	planetHandler := planetHandlers.NewPlanetHandler(r.planetService)

	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/planets/{id}", planetHandler.GetByID)
	mux.HandleFunc("/api/planets", planetHandler.Create)

	endpoints := []string{"/api/server/health", "/api/planets/{id}", "/api/planets"}
	if r.config.Metrics.Enabled {
		mux.Handle(r.config.Metrics.Path, promhttp.Handler())
		endpoints = append(endpoints, r.config.Metrics.Path)
	}

	logger.Info("Routes configured successfully", "endpoints", endpoints)

	return mux
}

// Handler wraps the routes with the middleware chain, outermost first:
// recovery, request id, metrics, CORS, rate limit.
func (r *Routes) Handler(ctx context.Context) http.Handler {
	rateLimiter := middleware.NewRateLimiter(ctx, r.config.RateLimit)
	cors := middleware.NewCORS(r.config.Frontend)

	var handler http.Handler = r.Setup()
	handler = rateLimiter.Middleware(handler)
	handler = cors.Middleware(handler)
	handler = middleware.Metrics(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(handler)

	return handler
}
