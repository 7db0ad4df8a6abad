package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"skyfare/reservations/internal/constants"
	"skyfare/reservations/internal/logging"
	"skyfare/reservations/internal/metrics"
	"skyfare/reservations/internal/models/dtos"
	"skyfare/reservations/internal/services"
)

// outcomeMessages maps each search outcome to its response message.
var outcomeMessages = map[services.SearchOutcome]string{
	services.OutcomeFlightsFound:     constants.MsgFlightsFound,
	services.OutcomeInvalidClass:     constants.MsgInvalidClass,
	services.OutcomeUnknownRoute:     constants.MsgUnknownRoute,
	services.OutcomeRouteNotOperated: constants.MsgRouteNotOperated,
	services.OutcomeNoFlightsOnDate:  constants.MsgNoFlightsOnDate,
	services.OutcomeNoClassAvailable: constants.MsgNoClassAvailable,
	services.OutcomeAllSeatsBooked:   constants.MsgAllSeatsBooked,
}

// SearchHandler serves GET /api/v1/flights/search.
func SearchHandler(searchSvc *services.SearchService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		req := dtos.SearchRequest{
			Source:      q.Get("source"),
			Destination: q.Get("destination"),
			Date:        q.Get("date"),
			ClassType:   q.Get("class_type"),
		}
		if p := q.Get("passengers"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				respondError(w, initTime, "Invalid passengers parameter", http.StatusBadRequest)
				return
			}
			req.Passengers = n
		}

		if errs := req.Validate(); len(errs) > 0 {
			respondError(w, initTime, strings.Join(errs, "; "), http.StatusBadRequest)
			return
		}

		offers, outcome, err := searchSvc.Search(r.Context(), req)
		if err != nil {
			logging.Error("Flight search failed",
				"source", req.Source,
				"destination", req.Destination,
				"date", req.Date,
				"error", err.Error(),
			)
			respondError(w, initTime, "Search failed", http.StatusInternalServerError)
			return
		}

		metricsReg.SearchesTotal.WithLabelValues(string(outcome)).Inc()

		data := dtos.SearchData{Offers: offers, Outcome: string(outcome)}
		respondSuccess(w, initTime, outcomeMessages[outcome], data)
	}
}
