package repositories

import (
	"context"
	"fmt"

	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
)

// FlightRepository handles flight template and catalog queries. Templates,
// recurrences, base seats and class pricings are read-only here; catalog
// setup happens out of band (see internal/seed).
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// FindByRoute returns every template flying the airport pair, with
// recurrences preloaded so the materializer can pattern-match in memory.
func (r *FlightRepository) FindByRoute(ctx context.Context, sourceID, destinationID uint) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("Recurrence").
		Where("source_id = ? AND destination_id = ?", sourceID, destinationID).
		Order("departure_time").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flights for route: %w", err)
	}

	return flights, nil
}

// FindByNumberAndRoute resolves a template for booking; returns (nil, nil)
// when the flight number does not fly that pair.
func (r *FlightRepository) FindByNumberAndRoute(ctx context.Context, flightNumber string, sourceID, destinationID uint) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("Recurrence").
		Where("flight_number = ? AND source_id = ? AND destination_id = ?",
			flightNumber, sourceID, destinationID).
		First(&flight).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// IDsSellingClass filters the given flight IDs down to those with a
// BaseFlightSeat row for the seat class.
func (r *FlightRepository) IDsSellingClass(ctx context.Context, flightIDs []uint, seatClassID uint) (map[uint]bool, error) {
	if len(flightIDs) == 0 {
		return map[uint]bool{}, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&gormModels.BaseFlightSeat{}).
		Where("flight_id IN ? AND seat_class_id = ?", flightIDs, seatClassID).
		Distinct("flight_id").
		Pluck("flight_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to filter flights by class: %w", err)
	}

	selling := make(map[uint]bool, len(ids))
	for _, id := range ids {
		selling[id] = true
	}
	return selling, nil
}

// BaseSeat returns the template capacity/price row for (flight, class), or
// ErrNoBaseCapacity when the class is not sold on the flight.
func (r *FlightRepository) BaseSeat(ctx context.Context, flightID, seatClassID uint) (*gormModels.BaseFlightSeat, error) {
	var base gormModels.BaseFlightSeat

	err := r.db.WithContext(ctx).
		Where("flight_id = ? AND seat_class_id = ?", flightID, seatClassID).
		First(&base).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNoBaseCapacity
		}
		return nil, fmt.Errorf("failed to fetch base seat: %w", err)
	}

	return &base, nil
}

// ClassMultiplier returns the fare multiplier for (flight, class), falling
// back to 1.0 when no ClassPricing row exists.
func (r *FlightRepository) ClassMultiplier(ctx context.Context, flightID, seatClassID uint) (float64, error) {
	var pricing gormModels.ClassPricing

	err := r.db.WithContext(ctx).
		Where("flight_id = ? AND seat_class_id = ?", flightID, seatClassID).
		First(&pricing).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 1.0, nil
		}
		return 0, fmt.Errorf("failed to fetch class pricing: %w", err)
	}

	return pricing.Multiplier, nil
}
