package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/flashdeck/flashdeck-api/internal/api"
	apiMiddleware "github.com/flashdeck/flashdeck-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The API is consumed by browser frontends on other origins.
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	deckHandler := api.NewDeckHandler(app.deckService, app.logger)
	statusHandler := api.NewStatusHandler(app.statusService, app.deckService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", statusHandler.Root)

		r.Post("/status", statusHandler.CreateStatusCheck)
		r.Get("/status", statusHandler.ListStatusChecks)
		r.Post("/test-sutra", statusHandler.TestSutra)

		r.Post("/generate-cards", deckHandler.GenerateCards)
		r.Get("/decks", deckHandler.ListDecks)
		r.Get("/decks/{id}", deckHandler.GetDeck)
		r.Delete("/decks/{id}", deckHandler.DeleteDeck)
		r.Post("/export", deckHandler.ExportDecks)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
