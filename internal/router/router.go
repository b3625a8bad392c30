package router

import (
	"net/http"
	"time"

	middleware2 "dev-insights-service/pkg/middleware"

	"dev-insights-service/internal/handler"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	insightsHandler *handler.InsightsHandler,
	snapshotHandler *handler.SnapshotHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Health
	r.Head("/health", healthHandler.Health)
	r.Get("/health", healthHandler.Health)

	// Insights queries
	r.Get("/insights/developer", insightsHandler.GetDeveloperInsights)
	r.Get("/insights/team", insightsHandler.GetTeamInsights)
	r.Get("/insights/leaderboard", insightsHandler.Leaderboard)

	// Snapshot persistence
	r.Post("/snapshots/developer", snapshotHandler.SaveDeveloperSnapshot)
	r.Post("/snapshots/team", snapshotHandler.SaveTeamSnapshot)
	r.Post("/snapshots/workspace", snapshotHandler.GenerateWorkspaceSnapshots)
	r.Get("/snapshots/developer", snapshotHandler.GetDeveloperSnapshots)

	return r
}
