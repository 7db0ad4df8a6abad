package routes

import (
	"net/http"
	"time"

	"skyfare/reservations/internal/api"
	"skyfare/reservations/internal/db"
	"skyfare/reservations/internal/logging"
	"skyfare/reservations/internal/metrics"
	"skyfare/reservations/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the chi router with global middleware and all API
// routes. The prometheus /metrics endpoint is mounted outside this router,
// in cmd/server.
func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cities", api.CitiesHandler(deps.Services.Directory))
		r.Get("/seat-classes", api.SeatClassesHandler(deps.Services.Directory))
		r.Get("/flights/search", api.SearchHandler(deps.Services.Search, metricsReg))
		r.Post("/bookings", api.BookingHandler(deps.Services.Booking, metricsReg))
		r.Post("/bookings/round-trip", api.RoundTripHandler(deps.Services.Booking, metricsReg))
	})

	return r
}
