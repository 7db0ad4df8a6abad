package gorm

import "time"

// FlightScheduleSeat is the seat ledger: the only mutable row in the core.
// AvailableSeats starts at the matching BaseFlightSeat.TotalSeats and is
// only ever decremented under a row lock.
type FlightScheduleSeat struct {
	ID               uint      `gorm:"column:id;primaryKey"`
	FlightScheduleID uint      `gorm:"column:flight_schedule_id;not null;uniqueIndex:idx_schedule_seat_class,priority:1"`
	SeatClassID      uint      `gorm:"column:seat_class_id;not null;uniqueIndex:idx_schedule_seat_class,priority:2"`
	AvailableSeats   int       `gorm:"column:available_seats;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FlightScheduleSeat) TableName() string {
	return "flight_schedule_seats"
}
