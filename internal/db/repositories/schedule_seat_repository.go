package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleSeatRepository owns the seat ledger: lazy initialization from the
// template's base capacity, and the atomic check-and-decrement that keeps
// 0 <= available_seats <= total_seats under concurrent bookings.
type ScheduleSeatRepository struct {
	db *gorm.DB
}

// NewScheduleSeatRepository creates a new schedule seat repository
func NewScheduleSeatRepository(db *gorm.DB) *ScheduleSeatRepository {
	return &ScheduleSeatRepository{db: db}
}

// GetOrInit returns the ledger row for (schedule, class), creating it from
// the matching BaseFlightSeat on first touch. Returns ErrNoBaseCapacity when
// the flight does not sell that class. The insert is an upsert so concurrent
// first-touches yield exactly one row.
func (r *ScheduleSeatRepository) GetOrInit(ctx context.Context, scheduleID, seatClassID, flightID uint) (*gormModels.FlightScheduleSeat, error) {
	var seat gormModels.FlightScheduleSeat

	err := r.db.WithContext(ctx).
		Where("flight_schedule_id = ? AND seat_class_id = ?", scheduleID, seatClassID).
		First(&seat).Error
	if err == nil {
		return &seat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch schedule seat: %w", err)
	}

	var base gormModels.BaseFlightSeat
	err = r.db.WithContext(ctx).
		Where("flight_id = ? AND seat_class_id = ?", flightID, seatClassID).
		First(&base).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoBaseCapacity
		}
		return nil, fmt.Errorf("failed to fetch base seat: %w", err)
	}

	seat = gormModels.FlightScheduleSeat{
		FlightScheduleID: scheduleID,
		SeatClassID:      seatClassID,
		AvailableSeats:   base.TotalSeats,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_schedule_id"}, {Name: "seat_class_id"}},
			DoNothing: true,
		}).
		Create(&seat)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to initialize schedule seat: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// Lost the init race; pick up the winner's row.
		err = r.db.WithContext(ctx).
			Where("flight_schedule_id = ? AND seat_class_id = ?", scheduleID, seatClassID).
			First(&seat).Error
		if err != nil {
			return nil, fmt.Errorf("failed to fetch schedule seat after upsert: %w", err)
		}
	}

	return &seat, nil
}

// Decrement performs the atomic read-check-write on one ledger row inside
// the caller's transaction. The row is re-read under an exclusive lock so no
// two decrements interleave; on Postgres that is SELECT ... FOR UPDATE,
// SQLite's single-writer transactions give the same guarantee without the
// clause (which its SQL does not accept).
func (r *ScheduleSeatRepository) Decrement(ctx context.Context, tx *gorm.DB, seatID uint, n int) (*gormModels.FlightScheduleSeat, error) {
	var seat gormModels.FlightScheduleSeat

	q := tx.WithContext(ctx)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := q.Where("id = ?", seatID).First(&seat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock seat row: %w", err)
	}

	if seat.AvailableSeats < n {
		return nil, ErrInsufficientSeats
	}

	err := tx.WithContext(ctx).
		Model(&gormModels.FlightScheduleSeat{}).
		Where("id = ?", seat.ID).
		Update("available_seats", gorm.Expr("available_seats - ?", n)).Error
	if err != nil {
		return nil, fmt.Errorf("failed to decrement seats: %w", err)
	}

	seat.AvailableSeats -= n
	return &seat, nil
}

// Find returns the ledger row by primary key, or ErrNotFound.
func (r *ScheduleSeatRepository) Find(ctx context.Context, seatID uint) (*gormModels.FlightScheduleSeat, error) {
	var seat gormModels.FlightScheduleSeat
	err := r.db.WithContext(ctx).Where("id = ?", seatID).First(&seat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch schedule seat: %w", err)
	}
	return &seat, nil
}
