// Package http is the inbound HTTP adapter: routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web"
)

// NewRouter registers the board pages, the JSON API and the health probes
// on one chi router. Middleware applies to every route, outermost first.
func NewRouter(
	pages *web.Handler,
	projectHandler *handlers.ProjectHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/", pages.Page)
	r.Post("/projects", pages.Submit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects", projectHandler.CreateProject)
	})

	return r
}
