package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/prompt-relay/internal/api"
	apiMiddleware "github.com/phrazzld/prompt-relay/internal/api/middleware"
	"github.com/phrazzld/prompt-relay/internal/api/shared"
	"github.com/phrazzld/prompt-relay/internal/metrics"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{shared.TraceIDHeader},
	}).Handler)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	generateHandler := api.NewGenerateHandler(app.invoker, app.logger)

	r.Get("/", api.IndexHandler(app.config.Server.IndexPath))
	r.Post("/generate", generateHandler.Generate)
	r.Get("/health", api.HealthHandler)

	if app.registry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(app.registry))
	}

	return r
}
