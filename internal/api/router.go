package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/handlers"
	custommiddleware "github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/api/middleware"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/config"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/service"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/strategy"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	catalog *strategy.Catalog,
	allocationService *service.AllocationService,
	planService *service.PlanService,
	rebalanceService *service.RebalanceService,
	driftScanService *service.DriftScanService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/strategy", func(r chi.Router) {
			strategyHandler := handlers.NewStrategyHandler(catalog)
			r.Get("/", strategyHandler.Strategies)
		})

		r.Route("/plan", func(r chi.Router) {
			planHandler := handlers.NewPlanHandler(allocationService, planService)
			driftHandler := handlers.NewDriftHandler(driftScanService)

			r.Post("/preview", planHandler.Preview)
			r.Post("/", planHandler.CreatePlan)
			r.Get("/", planHandler.Plans)

			r.Route("/{planId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidatePlanIDMiddleware)
				r.Get("/", planHandler.Plan)
				r.Delete("/", planHandler.DeletePlan)
				r.Post("/snapshot", driftHandler.Snapshot)
				r.Get("/drift", driftHandler.Drift)
				r.Get("/drift/history", driftHandler.DriftHistory)
			})
		})

		r.Route("/rebalance", func(r chi.Router) {
			rebalanceHandler := handlers.NewRebalanceHandler(rebalanceService)
			r.Post("/allocation", rebalanceHandler.Allocation)
			r.Post("/check", rebalanceHandler.Check)
			r.Post("/trades", rebalanceHandler.Trades)
		})
	})

	return r
}
