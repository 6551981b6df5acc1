package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the API router. metrics is mounted at /metrics when non-nil.
func NewRouter(h *DirectoryHandler, logger *slog.Logger, metrics http.Handler) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger(logger))          // structured access log
	r.Use(CORS)                    // permissive CORS for the web client

	r.Get("/health", HealthCheck)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	r.Get("/catalog", h.Catalog)
	r.Get("/notifications", h.Notifications)

	r.Route("/session", func(r chi.Router) {
		r.Get("/", h.CurrentUser)
		r.Post("/", h.Login)
		r.Delete("/", h.Logout)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.RegisterUser)
	})
	r.Get("/volunteers", h.ListVolunteers)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Post("/", h.CreateEvent)
		r.Get("/all", h.ListAllEvents)
		r.Get("/{id}", h.GetEvent)
		r.Get("/{id}/volunteers", h.ListEventVolunteers)
		r.Post("/{id}/volunteers", h.MatchVolunteer)
	})

	r.Route("/filter", func(r chi.Router) {
		r.Get("/", h.GetFilter)
		r.Put("/", h.SetFilter)
	})

	r.Route("/me", func(r chi.Router) {
		r.Get("/events", h.MyEvents)
		r.Get("/recommended", h.Recommended)
		r.Get("/dashboard", h.Dashboard)
	})

	return r
}
