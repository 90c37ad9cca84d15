package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"flightcal/server/internal/api"
)

// RegisterAPIRoutes registers the JSON endpoints
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, upSince time.Time) {
	r.Get("/healthCheck", api.HealthCheckHandler(deps.Services.Lookup, deps.Services.Sessions, upSince))

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/flights", api.FlightsLookupHandler(deps.Services.Lookup))
	})
}
