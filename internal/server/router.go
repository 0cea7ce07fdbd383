package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/deepakkumardewani/review-pilot/internal/github"
	"github.com/deepakkumardewani/review-pilot/internal/review"
	"github.com/deepakkumardewani/review-pilot/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(orchestrator *review.Orchestrator, gh github.Client, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// The review response streams for the lifetime of the model
		// call, so this route carries no timeout middleware.
		reviewHandler := handler.NewReviewHandler(orchestrator, logger)
		r.Post("/review", reviewHandler.Handle)

		repoHandler := handler.NewRepoHandler(gh, logger)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))
			r.Get("/repos/{owner}", repoHandler.ListRepositories)
			r.Get("/repos/{owner}/{repo}/branches", repoHandler.ListBranches)
			r.Get("/repos/{owner}/{repo}/tree", repoHandler.GetTree)
			r.Get("/repos/{owner}/{repo}/file", repoHandler.GetFile)
		})
	})

	return r
}
