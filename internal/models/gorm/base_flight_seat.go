package gorm

import "time"

// BaseFlightSeat is the template-level capacity and price for one
// (flight, seat class) pair. Read-only once the catalog is loaded; every
// materialized FlightScheduleSeat copies its counter from TotalSeats.
type BaseFlightSeat struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	FlightID    uint      `gorm:"column:flight_id;not null;uniqueIndex:idx_base_seat_flight_class,priority:1"`
	SeatClassID uint      `gorm:"column:seat_class_id;not null;uniqueIndex:idx_base_seat_flight_class,priority:2"`
	TotalSeats  int       `gorm:"column:total_seats;not null"`
	BasePrice   float64   `gorm:"column:base_price;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (BaseFlightSeat) TableName() string {
	return "base_flight_seats"
}
