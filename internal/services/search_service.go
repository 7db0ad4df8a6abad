package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"skyfare/reservations/internal/common"
	"skyfare/reservations/internal/db/repositories"
	"skyfare/reservations/internal/models/dtos"
	gormModels "skyfare/reservations/internal/models/gorm"
)

// SearchOutcome classifies a search result. Exactly one applies per search,
// evaluated in the order declared below; first applicable wins.
type SearchOutcome string

const (
	OutcomeInvalidClass     SearchOutcome = "INVALID_CLASS"
	OutcomeUnknownRoute     SearchOutcome = "UNKNOWN_ROUTE"
	OutcomeRouteNotOperated SearchOutcome = "ROUTE_NOT_OPERATED"
	OutcomeNoFlightsOnDate  SearchOutcome = "NO_FLIGHTS_ON_DATE"
	OutcomeNoClassAvailable SearchOutcome = "NO_CLASS_AVAILABLE"
	OutcomeAllSeatsBooked   SearchOutcome = "ALL_SEATS_BOOKED"
	OutcomeFlightsFound     SearchOutcome = "FLIGHTS_FOUND"
)

var dayInitials = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// SearchService enumerates candidate templates for a route and date,
// materializes their inventory and prices each qualifying offer.
type SearchService struct {
	airports  *repositories.AirportRepository
	classes   *repositories.SeatClassRepository
	flights   *repositories.FlightRepository
	seats     *repositories.ScheduleSeatRepository
	scheduler *ScheduleService

	now func() time.Time
}

// NewSearchService creates a new search service
func NewSearchService(
	airports *repositories.AirportRepository,
	classes *repositories.SeatClassRepository,
	flights *repositories.FlightRepository,
	seats *repositories.ScheduleSeatRepository,
	scheduler *ScheduleService,
) *SearchService {
	return &SearchService{
		airports:  airports,
		classes:   classes,
		flights:   flights,
		seats:     seats,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// Search runs the outcome state machine over a validated request and
// returns the qualifying offers. The request is assumed validated and
// defaulted by the caller.
func (s *SearchService) Search(ctx context.Context, req dtos.SearchRequest) ([]dtos.FlightOffer, SearchOutcome, error) {
	classType := common.NormalizeName(req.ClassType)
	seatClass, err := s.classes.FindByName(ctx, classType)
	if err != nil {
		return nil, "", err
	}
	if seatClass == nil {
		return nil, OutcomeInvalidClass, nil
	}

	source, err := s.airports.FindByCity(ctx, common.NormalizeName(req.Source))
	if err != nil {
		return nil, "", err
	}
	destination, err := s.airports.FindByCity(ctx, common.NormalizeName(req.Destination))
	if err != nil {
		return nil, "", err
	}
	if source == nil || destination == nil {
		return nil, OutcomeUnknownRoute, nil
	}

	flights, err := s.flights.FindByRoute(ctx, source.ID, destination.ID)
	if err != nil {
		return nil, "", err
	}
	if len(flights) == 0 {
		return nil, OutcomeRouteNotOperated, nil
	}

	operating := make([]gormModels.Flight, 0, len(flights))
	for i := range flights {
		ok, err := s.scheduler.OperatesOn(ctx, &flights[i], req.Date)
		if err != nil {
			return nil, "", err
		}
		if ok {
			operating = append(operating, flights[i])
		}
	}
	if len(operating) == 0 {
		return nil, OutcomeNoFlightsOnDate, nil
	}

	ids := make([]uint, len(operating))
	for i := range operating {
		ids[i] = operating[i].ID
	}
	selling, err := s.flights.IDsSellingClass(ctx, ids, seatClass.ID)
	if err != nil {
		return nil, "", err
	}

	candidates := make([]gormModels.Flight, 0, len(operating))
	for i := range operating {
		if selling[operating[i].ID] {
			candidates = append(candidates, operating[i])
		}
	}
	if len(candidates) == 0 {
		return nil, OutcomeNoClassAvailable, nil
	}

	now := s.now()
	offers := make([]dtos.FlightOffer, 0, len(candidates))
	for i := range candidates {
		offer, ok, err := s.buildOffer(ctx, &candidates[i], seatClass, source.City, destination.City, req, now)
		if err != nil {
			return nil, "", err
		}
		if ok {
			offers = append(offers, *offer)
		}
	}
	if len(offers) == 0 {
		return nil, OutcomeAllSeatsBooked, nil
	}

	return offers, OutcomeFlightsFound, nil
}

// buildOffer materializes the ledger for one candidate and prices it.
// Returns ok=false when the flight does not qualify (too few seats, or it
// already departed today).
func (s *SearchService) buildOffer(
	ctx context.Context,
	flight *gormModels.Flight,
	seatClass *gormModels.SeatClass,
	sourceCity, destinationCity string,
	req dtos.SearchRequest,
	now time.Time,
) (*dtos.FlightOffer, bool, error) {
	schedule, err := s.scheduler.Resolve(ctx, flight, req.Date)
	if err != nil {
		return nil, false, err
	}

	seat, err := s.seats.GetOrInit(ctx, schedule.ID, seatClass.ID, flight.ID)
	if err != nil {
		return nil, false, err
	}
	if seat.AvailableSeats < req.Passengers {
		return nil, false, nil
	}

	departure, err := departureTimestamp(req.Date, flight.DepartureTime)
	if err != nil {
		return nil, false, fmt.Errorf("flight %s has a malformed departure time: %w", flight.FlightNumber, err)
	}
	// Same-day cutoff: a flight that already left today simply doesn't qualify.
	if req.Date == now.Format(dtos.DateLayout) && departure.Before(now) {
		return nil, false, nil
	}

	base, err := s.flights.BaseSeat(ctx, flight.ID, seatClass.ID)
	if err != nil {
		return nil, false, err
	}
	multiplier, err := s.flights.ClassMultiplier(ctx, flight.ID, seatClass.ID)
	if err != nil {
		return nil, false, err
	}

	surcharge := Surcharge(base.BasePrice, base.TotalSeats, seat.AvailableSeats, req.Date, now)
	pricePerPerson := base.BasePrice*multiplier + surcharge

	return &dtos.FlightOffer{
		FlightNumber:   flight.FlightNumber,
		Source:         sourceCity,
		Destination:    destinationCity,
		ClassType:      common.NormalizeName(req.ClassType),
		DepartureTime:  departure,
		ArrivalTime:    departure.Add(time.Duration(flight.DurationMinutes) * time.Minute),
		BasePrice:      round2(base.BasePrice),
		Surcharge:      round2(surcharge),
		PricePerPerson: round2(pricePerPerson),
		TotalFare:      round2(pricePerPerson * float64(req.Passengers)),
		AvailableSeats: seat.AvailableSeats,
		IsRecurring:    flight.IsRecurring,
		RecurrenceDays: recurrenceSummary(flight),
	}, true, nil
}

// recurrenceSummary renders the operating pattern for display: "Everyday",
// ordered weekday initials, or "One-time flight".
func recurrenceSummary(flight *gormModels.Flight) string {
	if !flight.IsRecurring || flight.Recurrence == nil {
		return "One-time flight"
	}

	days := flight.Recurrence.DaysOfWeek
	if days.Everyday() {
		return "Everyday"
	}

	initials := make([]string, 0, len(days))
	for d := 0; d < 7; d++ {
		if days.Contains(time.Weekday(d)) {
			initials = append(initials, dayInitials[d])
		}
	}
	return strings.Join(initials, " ")
}

// departureTimestamp combines the search date with the template's
// time-of-day in the server's timezone.
func departureTimestamp(date, departureTime string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", date+" "+departureTime, time.Local)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
