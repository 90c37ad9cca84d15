package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"flightcal/server/internal/api"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/middleware"
	"flightcal/server/web/ui"
)

func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	if deps.Config.App.Debug {
		r.Use(middleware.RequestDumpMiddleware)
		logging.Warn("DEBUG enabled: request/response dumps are logged")
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	RegisterAPIRoutes(r, deps, upSince)

	lookupClient := ui.NewAPILookupClient(deps.Config.UI.LookupBaseURL)
	controller := ui.NewController(lookupClient, deps.Services.Sessions, deps.Metrics)
	uiHandler := ui.NewUIHandler(
		controller,
		deps.Services.Sessions,
		deps.Services.Signer,
		deps.Config.App.Env == "production",
	)
	RegisterUIRoutes(r, uiHandler)

	return r
}
