// Package api provides the HTTP API for the OfficeCast weather proxy.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/officecast/officecast/internal/api/handler"
	"github.com/officecast/officecast/internal/api/middleware"
	"github.com/officecast/officecast/internal/proxy"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics
	Service   *proxy.Service
	RateLimit *middleware.RateLimitConfig
}

// NewRouter creates a chi router with the proxy routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	// Answers OPTIONS preflights and stamps CORS + Cache-Control on
	// every response, errors included.
	r.Use(middleware.EdgeHeaders(cfg.Service.TTL()))

	weatherHandler := handler.NewWeatherHandler(cfg.Service)
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)

	rateLimit := middleware.StandardRateLimit
	if cfg.RateLimit != nil {
		rateLimit = *cfg.RateLimit
	}

	r.With(middleware.RateLimitByIP(rateLimit)).Get("/weather", weatherHandler.GetWeather)

	r.Route("/v1/ops", func(r chi.Router) {
		r.Get("/health", opsHandler.HealthCheck)
		r.Get("/ready", opsHandler.ReadinessCheck)
	})

	// The method check outranks the route check in the endpoint
	// contract, so both fallbacks route through the handler package.
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}
