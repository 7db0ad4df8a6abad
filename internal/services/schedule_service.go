package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skyfare/reservations/internal/db/repositories"
	"skyfare/reservations/internal/models/dtos"
	gormModels "skyfare/reservations/internal/models/gorm"
)

// ErrNotOperating is returned when a flight does not fly on the requested
// date: outside the recurrence window, wrong weekday, or a one-time flight
// scheduled for a different day.
var ErrNotOperating = errors.New("flight does not operate on this date")

// ScheduleService turns flight templates into concrete per-date schedule
// rows, creating them lazily on first access.
type ScheduleService struct {
	schedules *repositories.ScheduleRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(schedules *repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{schedules: schedules}
}

// OperatesOn reports whether the template flies on the given date, without
// materializing anything. Recurrence must be preloaded on recurring flights.
func (s *ScheduleService) OperatesOn(ctx context.Context, flight *gormModels.Flight, date string) (bool, error) {
	if flight.IsRecurring {
		return s.recurrenceCovers(flight, date), nil
	}

	sched, err := s.schedules.FindByFlightAndDate(ctx, flight.ID, date)
	if err != nil {
		return false, err
	}
	return sched != nil, nil
}

// Resolve returns the schedule row for (flight, date), materializing it if
// the flight operates that day. Fails with ErrNotOperating otherwise.
func (s *ScheduleService) Resolve(ctx context.Context, flight *gormModels.Flight, date string) (*gormModels.FlightSchedule, error) {
	if flight.IsRecurring {
		if !s.recurrenceCovers(flight, date) {
			return nil, fmt.Errorf("flight %s: recurrence does not cover %s: %w",
				flight.FlightNumber, date, ErrNotOperating)
		}
		return s.schedules.GetOrCreate(ctx, flight.ID, date)
	}

	// One-time flights pre-declare their single date at catalog load, so
	// resolution is a lookup. The two miss causes get distinct detail for
	// diagnostics but surface the same error kind.
	sched, err := s.schedules.FindByFlightAndDate(ctx, flight.ID, date)
	if err != nil {
		return nil, err
	}
	if sched != nil {
		return sched, nil
	}

	count, err := s.schedules.CountForFlight(ctx, flight.ID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("flight %s was never scheduled: %w", flight.FlightNumber, ErrNotOperating)
	}
	return nil, fmt.Errorf("flight %s is not scheduled on %s: %w", flight.FlightNumber, date, ErrNotOperating)
}

// recurrenceCovers checks weekday membership and the validity window.
// ISO dates compare correctly as strings.
func (s *ScheduleService) recurrenceCovers(flight *gormModels.Flight, date string) bool {
	rec := flight.Recurrence
	if rec == nil {
		return false
	}

	day, err := time.Parse(dtos.DateLayout, date)
	if err != nil {
		return false
	}
	if !rec.DaysOfWeek.Contains(day.Weekday()) {
		return false
	}
	if date < rec.StartDate {
		return false
	}
	if rec.EndDate != nil && date > *rec.EndDate {
		return false
	}
	return true
}
