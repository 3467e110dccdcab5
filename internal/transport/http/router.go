// Package httptransport is the thin HTTP layer over the engine. Handlers
// delegate to the use case and the catalog without embedding business logic
// so transport concerns remain isolated.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ratto/EDaemonCore/internal/jwtauth"
)

// NewRouter wires all public endpoints. Skill-test execution requires a
// bearer token; catalog reads and operational endpoints do not.
func NewRouter(
	skillTests *SkillTestHandler,
	skills *CatalogHandler,
	tokens *jwtauth.Service,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestTime)
	r.Use(Recovery(logger))
	r.Use(Logger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		skills.Register(api)

		api.Group(func(authed chi.Router) {
			authed.Use(RequireAuth(tokens))
			skillTests.Register(authed)
		})
	})

	return r
}
