package repositories

import (
	"context"
	"fmt"

	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleRepository materializes and fetches per-date schedule rows.
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetOrCreate upserts the schedule row for (flight, date). Concurrent
// first-touches converge on the unique index: the insert is
// ON CONFLICT DO NOTHING, and losers re-select the winner's row. A plain
// lookup-then-insert would race.
func (r *ScheduleRepository) GetOrCreate(ctx context.Context, flightID uint, flightDate string) (*gormModels.FlightSchedule, error) {
	sched := gormModels.FlightSchedule{
		FlightID:   flightID,
		FlightDate: flightDate,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_id"}, {Name: "flight_date"}},
			DoNothing: true,
		}).
		Create(&sched)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to materialize schedule: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// Row already existed (or another request won the race); the insert
		// did not fill in the primary key, so fetch the canonical row.
		err := r.db.WithContext(ctx).
			Where("flight_id = ? AND flight_date = ?", flightID, flightDate).
			First(&sched).Error
		if err != nil {
			return nil, fmt.Errorf("failed to fetch schedule after upsert: %w", err)
		}
	}

	return &sched, nil
}

// FindByFlightAndDate returns the schedule for (flight, date), or (nil, nil).
func (r *ScheduleRepository) FindByFlightAndDate(ctx context.Context, flightID uint, flightDate string) (*gormModels.FlightSchedule, error) {
	var sched gormModels.FlightSchedule

	err := r.db.WithContext(ctx).
		Where("flight_id = ? AND flight_date = ?", flightID, flightDate).
		First(&sched).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	return &sched, nil
}

// CountForFlight reports how many schedule rows a flight has. Used to tell
// "one-time flight never scheduled" apart from "scheduled on another date".
func (r *ScheduleRepository) CountForFlight(ctx context.Context, flightID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.FlightSchedule{}).
		Where("flight_id = ?", flightID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count schedules: %w", err)
	}
	return count, nil
}

// Create inserts a schedule row directly. Used by the seed loader to
// pre-declare the single date of a one-time flight.
func (r *ScheduleRepository) Create(ctx context.Context, flightID uint, flightDate string) error {
	sched := gormModels.FlightSchedule{FlightID: flightID, FlightDate: flightDate}
	if err := r.db.WithContext(ctx).Create(&sched).Error; err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}
