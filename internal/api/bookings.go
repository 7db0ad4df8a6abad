package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyfare/reservations/internal/constants"
	"skyfare/reservations/internal/db/repositories"
	"skyfare/reservations/internal/logging"
	"skyfare/reservations/internal/metrics"
	"skyfare/reservations/internal/models/dtos"
	"skyfare/reservations/internal/services"
)

// BookingHandler serves POST /api/v1/bookings.
func BookingHandler(bookingSvc *services.BookingService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			respondError(w, initTime, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := bookingSvc.Book(r.Context(), req)
		if err != nil {
			status := bookingStatus(err)
			recordBooking(metricsReg, "single", status)
			if status == http.StatusInternalServerError {
				logging.Error("Booking failed",
					"flight_number", req.FlightNumber,
					"date", req.Date,
					"error", err.Error(),
				)
				respondError(w, initTime, constants.MsgBookingFailed, status)
				return
			}
			respondError(w, initTime, err.Error(), status)
			return
		}

		recordBooking(metricsReg, "single", http.StatusOK)
		metricsReg.SeatsSoldTotal.Add(float64(req.Passengers))
		respondSuccess(w, initTime, constants.MsgBookingSuccessful, data)
	}
}

// RoundTripHandler serves POST /api/v1/bookings/round-trip.
func RoundTripHandler(bookingSvc *services.BookingService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RoundTripRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, "Invalid request body", http.StatusBadRequest)
			return
		}
		if err := req.Validate(); err != nil {
			respondError(w, initTime, err.Error(), http.StatusBadRequest)
			return
		}

		data, err := bookingSvc.BookRoundTrip(r.Context(), req)
		if err != nil {
			status := bookingStatus(err)
			recordBooking(metricsReg, "round_trip", status)
			if status == http.StatusInternalServerError {
				logging.Error("Round trip booking failed",
					"onward", req.Onward.FlightNumber,
					"return", req.Return.FlightNumber,
					"error", err.Error(),
				)
				respondError(w, initTime, constants.MsgBookingFailed, status)
				return
			}
			respondError(w, initTime, err.Error(), status)
			return
		}

		recordBooking(metricsReg, "round_trip", http.StatusOK)
		metricsReg.SeatsSoldTotal.Add(float64(req.Onward.Passengers + req.Return.Passengers))
		respondSuccess(w, initTime, constants.MsgRoundTripSuccessful, data)
	}
}

// bookingStatus maps service errors onto HTTP statuses: insufficient seats
// is a conflict, resolution misses are not-found, the rest is internal.
func bookingStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrInsufficientSeats):
		return http.StatusConflict
	case errors.Is(err, repositories.ErrNotFound),
		errors.Is(err, repositories.ErrNoBaseCapacity),
		errors.Is(err, services.ErrNotOperating):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func recordBooking(metricsReg *metrics.MetricsRegistry, kind string, status int) {
	result := "error"
	switch status {
	case http.StatusOK:
		result = "success"
	case http.StatusConflict:
		result = "conflict"
		metricsReg.BookingConflicts.Inc()
	case http.StatusNotFound:
		result = "not_found"
	}
	metricsReg.BookingsTotal.WithLabelValues(kind, result).Inc()
}
