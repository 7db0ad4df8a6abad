package services

import (
	"context"
	"fmt"

	"skyfare/reservations/internal/common"
	"skyfare/reservations/internal/db/repositories"
	"skyfare/reservations/internal/models/dtos"
	gormModels "skyfare/reservations/internal/models/gorm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService decrements seat ledgers atomically. A single-leg booking
// is one transaction over one row; a round trip is one transaction over two
// rows with all-or-nothing semantics.
type BookingService struct {
	db        *gorm.DB
	airports  *repositories.AirportRepository
	classes   *repositories.SeatClassRepository
	flights   *repositories.FlightRepository
	seats     *repositories.ScheduleSeatRepository
	scheduler *ScheduleService
}

// NewBookingService creates a new booking service
func NewBookingService(
	db *gorm.DB,
	airports *repositories.AirportRepository,
	classes *repositories.SeatClassRepository,
	flights *repositories.FlightRepository,
	seats *repositories.ScheduleSeatRepository,
	scheduler *ScheduleService,
) *BookingService {
	return &BookingService{
		db:        db,
		airports:  airports,
		classes:   classes,
		flights:   flights,
		seats:     seats,
		scheduler: scheduler,
	}
}

// resolvedLeg is one leg after the full template->schedule->class->ledger
// resolution, ready to be decremented.
type resolvedLeg struct {
	flight     *gormModels.Flight
	seat       *gormModels.FlightScheduleSeat
	classType  string
	date       string
	passengers int
}

func (l *resolvedLeg) snapshot(remaining int) dtos.ScheduleSeatSnapshot {
	return dtos.ScheduleSeatSnapshot{
		FlightNumber:   l.flight.FlightNumber,
		FlightDate:     l.date,
		ClassType:      l.classType,
		Passengers:     l.passengers,
		AvailableSeats: remaining,
	}
}

// resolveLeg resolves a booking request down to its ledger row. Misses at
// any step surface as wrapped sentinel errors for the handler to map.
func (s *BookingService) resolveLeg(ctx context.Context, req dtos.BookingRequest) (*resolvedLeg, error) {
	source, err := s.airports.FindByCity(ctx, common.NormalizeName(req.Source))
	if err != nil {
		return nil, err
	}
	destination, err := s.airports.FindByCity(ctx, common.NormalizeName(req.Destination))
	if err != nil {
		return nil, err
	}
	if source == nil || destination == nil {
		return nil, fmt.Errorf("source or destination airport: %w", repositories.ErrNotFound)
	}

	flight, err := s.flights.FindByNumberAndRoute(ctx, req.FlightNumber, source.ID, destination.ID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s: %w", req.FlightNumber, repositories.ErrNotFound)
	}

	classType := common.NormalizeName(req.ClassType)
	seatClass, err := s.classes.FindByName(ctx, classType)
	if err != nil {
		return nil, err
	}
	if seatClass == nil {
		return nil, fmt.Errorf("seat class %q: %w", req.ClassType, repositories.ErrNotFound)
	}

	schedule, err := s.scheduler.Resolve(ctx, flight, req.Date)
	if err != nil {
		return nil, err
	}

	seat, err := s.seats.GetOrInit(ctx, schedule.ID, seatClass.ID, flight.ID)
	if err != nil {
		return nil, err
	}

	return &resolvedLeg{
		flight:     flight,
		seat:       seat,
		classType:  classType,
		date:       req.Date,
		passengers: req.Passengers,
	}, nil
}

// Book books a single leg. The check-and-decrement runs inside one
// transaction; a conflict leaves the ledger untouched.
func (s *BookingService) Book(ctx context.Context, req dtos.BookingRequest) (*dtos.BookingData, error) {
	leg, err := s.resolveLeg(ctx, req)
	if err != nil {
		return nil, err
	}

	var updated *gormModels.FlightScheduleSeat
	err = s.db.Transaction(func(tx *gorm.DB) error {
		updated, err = s.seats.Decrement(ctx, tx, leg.seat.ID, leg.passengers)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dtos.BookingData{
		Reference: uuid.NewString(),
		Seat:      leg.snapshot(updated.AvailableSeats),
	}, nil
}

// RoundTripError reports which leg sank a round-trip booking and whether an
// already-applied onward decrement was rolled back.
type RoundTripError struct {
	Leg        string // "onward" or "return"
	RolledBack bool
	Err        error
}

func (e *RoundTripError) Error() string {
	if e.RolledBack {
		return fmt.Sprintf("%s leg failed, booking rolled back: %v", e.Leg, e.Err)
	}
	return fmt.Sprintf("%s leg failed: %v", e.Leg, e.Err)
}

func (e *RoundTripError) Unwrap() error { return e.Err }

// BookRoundTrip books onward and return legs as one atomic unit. Both legs
// must resolve before either is decremented; if the return decrement fails
// after the onward one succeeded, the whole transaction rolls back and the
// error says so explicitly.
func (s *BookingService) BookRoundTrip(ctx context.Context, req dtos.RoundTripRequest) (*dtos.RoundTripData, error) {
	onward, err := s.resolveLeg(ctx, req.Onward)
	if err != nil {
		return nil, &RoundTripError{Leg: "onward", Err: err}
	}
	ret, err := s.resolveLeg(ctx, req.Return)
	if err != nil {
		return nil, &RoundTripError{Leg: "return", Err: err}
	}

	// The saga records which decrements have been applied inside the
	// transaction so a failure can name the leg and the rollback.
	var onwardApplied bool
	var onwardSeat, returnSeat *gormModels.FlightScheduleSeat

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		onwardSeat, txErr = s.seats.Decrement(ctx, tx, onward.seat.ID, onward.passengers)
		if txErr != nil {
			return &RoundTripError{Leg: "onward", Err: txErr}
		}
		onwardApplied = true

		returnSeat, txErr = s.seats.Decrement(ctx, tx, ret.seat.ID, ret.passengers)
		if txErr != nil {
			return &RoundTripError{Leg: "return", RolledBack: onwardApplied, Err: txErr}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dtos.RoundTripData{
		Reference: uuid.NewString(),
		Onward:    onward.snapshot(onwardSeat.AvailableSeats),
		Return:    ret.snapshot(returnSeat.AvailableSeats),
	}, nil
}
