package repositories

import (
	"context"
	"fmt"

	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/gorm"
)

// SeatClassRepository handles seat class table operations
type SeatClassRepository struct {
	db *gorm.DB
}

// NewSeatClassRepository creates a new seat class repository
func NewSeatClassRepository(db *gorm.DB) *SeatClassRepository {
	return &SeatClassRepository{db: db}
}

// FindByName finds a seat class by its normalized name ("first class", not
// "First_Class"); returns (nil, nil) when no class matches.
func (r *SeatClassRepository) FindByName(ctx context.Context, name string) (*gormModels.SeatClass, error) {
	var class gormModels.SeatClass

	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", name).
		First(&class).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch seat class: %w", err)
	}

	return &class, nil
}

// ListNames returns all seat class names in alphabetical order.
func (r *SeatClassRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string

	err := r.db.WithContext(ctx).
		Model(&gormModels.SeatClass{}).
		Order("name").
		Pluck("name", &names).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list seat classes: %w", err)
	}

	return names, nil
}
