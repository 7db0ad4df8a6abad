package api

import (
	"net/http"
	"time"

	"skyfare/reservations/internal/services"
)

// CitiesHandler serves GET /api/v1/cities.
func CitiesHandler(directorySvc *services.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		cities, err := directorySvc.ListCities(r.Context())
		if err != nil {
			respondError(w, initTime, "Failed to list cities", http.StatusInternalServerError)
			return
		}

		respondSuccess(w, initTime, "Cities fetched", map[string][]string{"cities": cities})
	}
}

// SeatClassesHandler serves GET /api/v1/seat-classes.
func SeatClassesHandler(directorySvc *services.DirectoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		classes, err := directorySvc.ListSeatClasses(r.Context())
		if err != nil {
			respondError(w, initTime, "Failed to list seat classes", http.StatusInternalServerError)
			return
		}

		respondSuccess(w, initTime, "Seat classes fetched", map[string][]string{"seat_classes": classes})
	}
}
