package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/action-planner/internal/config"
	"github.com/sevigo/action-planner/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg *config.Config, planner handler.Planner, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.GenerateTimeout + 5*time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		planHandler := handler.NewPlanHandler(planner, cfg.PlannerConcurrency, logger)
		r.Get("/config", planHandler.Config)
		r.Get("/functions", planHandler.ListFunctions)
		r.Post("/plan", planHandler.CreatePlan)
		r.Post("/plans", planHandler.CreatePlans)
	})

	return r
}
