package repositories

import (
	"context"
	"fmt"

	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gorm.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByCity finds an airport by city name. The caller passes a normalized
// (lowercased, trimmed) city; returns (nil, nil) when no airport matches.
func (r *AirportRepository) FindByCity(ctx context.Context, city string) (*gormModels.Airport, error) {
	var airport gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("LOWER(city) = ?", city).
		First(&airport).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

// ListCities returns all distinct cities in alphabetical order.
func (r *AirportRepository) ListCities(ctx context.Context) ([]string, error) {
	var cities []string

	err := r.db.WithContext(ctx).
		Model(&gormModels.Airport{}).
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}

	return cities, nil
}
