package routes

import (
	"github.com/go-chi/chi/v5"

	"flightcal/server/internal/middleware"
	"flightcal/server/web/ui"
)

// RegisterUIRoutes registers the server-rendered search page
func RegisterUIRoutes(r chi.Router, uiHandler *ui.UIHandler) {
	r.Group(func(page chi.Router) {
		page.Use(middleware.LanguageMiddleware)

		page.Get("/", uiHandler.PageHandler)
		page.Post("/search", uiHandler.SearchHandler)
		page.Post("/mode", uiHandler.ModeHandler)
		page.Post("/language", uiHandler.LanguageHandler)
	})
}
