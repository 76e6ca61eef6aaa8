package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/officecast/officecast/internal/api/handler"
	"github.com/officecast/officecast/internal/api/middleware"
	"github.com/officecast/officecast/internal/api/response"
	"github.com/officecast/officecast/internal/view"
)

// DashboardRouterConfig holds configuration for the dashboard router.
type DashboardRouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics
	Fleet     handler.FleetService
	Assembler *view.Assembler
	RateLimit *middleware.RateLimitConfig
}

// NewDashboardRouter creates a chi router with the dashboard routes
// configured.
func NewDashboardRouter(cfg DashboardRouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)

	assembler := cfg.Assembler
	if assembler == nil {
		assembler = view.NewAssembler()
	}

	fleetHandler := handler.NewFleetHandler(cfg.Fleet, assembler)
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)

	rateLimit := middleware.StandardRateLimit
	if cfg.RateLimit != nil {
		rateLimit = *cfg.RateLimit
	}

	r.Route("/v1/fleet", func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(rateLimit))
		r.Get("/", fleetHandler.GetFleet)
		r.Get("/snapshot", fleetHandler.GetSnapshot)
		r.Post("/refresh", fleetHandler.RefreshFleet)
	})

	r.Route("/v1/ops", func(r chi.Router) {
		r.Get("/health", opsHandler.HealthCheck)
		r.Get("/ready", opsHandler.ReadinessCheck)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w, "Method not allowed for this endpoint.")
	})

	return r
}
