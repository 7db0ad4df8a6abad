package gorm

import "time"

// ClassPricing is an optional per-(flight, class) fare multiplier applied on
// top of the base price. Flights without a row default to 1.0.
type ClassPricing struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	FlightID    uint      `gorm:"column:flight_id;not null;uniqueIndex:idx_class_pricing_flight_class,priority:1"`
	SeatClassID uint      `gorm:"column:seat_class_id;not null;uniqueIndex:idx_class_pricing_flight_class,priority:2"`
	Multiplier  float64   `gorm:"column:multiplier;not null;default:1"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ClassPricing) TableName() string {
	return "class_pricings"
}
