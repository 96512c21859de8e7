package router

import (
	"contactform-backend/internal/http/handlers"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Setup creates and configures the HTTP router for local development
func Setup(contact handlers.ProxyHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Logger)

	// Health check endpoints
	r.Get("/health", handlers.HealthCheck)
	r.Get("/healthz", handlers.LivenessCheck)

	// Method routing belongs to the dispatcher, so every method reaches it
	r.Handle("/contact", handlers.NewContactHandler(contact))

	return r
}
