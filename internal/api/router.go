package api

import (
	"github.com/fitlog/fitlog-be/internal/api/handlers"
	"github.com/fitlog/fitlog-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(trackerService services.TrackerServiceProvider, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	trackerHandler := handlers.NewTrackerHandler(trackerService)

	// Landing page
	r.Get("/", serveIndex)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", trackerHandler.ListUsers)
		r.Post("/", trackerHandler.CreateUser)
		r.Post("/{id}/exercises", trackerHandler.AddExercise)
		r.Get("/{id}/logs", trackerHandler.GetLogs)
	})

	return r
}
