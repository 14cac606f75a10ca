package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/immocalc/Immo-Calculator-Backend/internal/api/handlers"
	custommiddleware "github.com/immocalc/Immo-Calculator-Backend/internal/api/middleware"
	"github.com/immocalc/Immo-Calculator-Backend/internal/config"
	"github.com/immocalc/Immo-Calculator-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	reportService *service.ReportService,
	loanService *service.LoanService,
	scenarioService *service.ScenarioService,
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

		reportHandler := handlers.NewReportHandler(reportService)
		r.Post("/report", reportHandler.Report)

		r.Route("/loan", func(r chi.Router) {
			loanHandler := handlers.NewLoanHandler(loanService)
			r.Post("/annuity", loanHandler.Annuity)
		})

		r.Route("/scenario", func(r chi.Router) {
			scenarioHandler := handlers.NewScenarioHandler(scenarioService, reportService)
			r.Get("/", scenarioHandler.Scenarios)
			r.Post("/", scenarioHandler.CreateScenario)
			r.Post("/compare", scenarioHandler.CompareScenarios)

			r.Route("/{scenarioId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateScenarioIDMiddleware)
				r.Get("/", scenarioHandler.Scenario)
				r.Put("/", scenarioHandler.UpdateScenario)
				r.Delete("/", scenarioHandler.DeleteScenario)
				r.Get("/report", scenarioHandler.ScenarioReport)
				r.Post("/rent-increase", scenarioHandler.AddRentIncrease)
				r.Delete("/rent-increase", scenarioHandler.ClearRentIncreases)
			})
		})
	})

	return r
}
