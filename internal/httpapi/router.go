// Package httpapi assembles the HTTP surface: routing, middleware, and the
// thin handlers that translate between JSON and the domain services.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salescredit/internal/platform/middleware"
)

// Deps carries everything the router needs. Handlers depend on the small
// service interfaces declared in this package so tests can mock them.
type Deps struct {
	Logger    *slog.Logger
	Validator *middleware.Validator
	Credits   CreditService
	Salesmen  SalesmanService
	Health    func(r *http.Request) error
}

// NewRouter builds the full route tree. Everything under /api requires a
// valid bearer token; health and metrics stay open for probes and scrapers.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Device)

	r.Get("/healthz", healthHandler(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequireAuth(deps.Validator, deps.Logger))

		creditHandler := &CreditHandler{credits: deps.Credits, salesmen: deps.Salesmen}
		creditHandler.Register(api)

		salesmanHandler := &SalesmanHandler{salesmen: deps.Salesmen}
		salesmanHandler.Register(api)
	})

	return r
}

func healthHandler(check func(r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unhealthy: " + err.Error()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
