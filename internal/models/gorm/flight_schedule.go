package gorm

import "time"

// FlightSchedule is a flight template materialized for one calendar date.
// Rows are created lazily on first touch and never mutated afterwards; the
// composite unique index is what lets concurrent first-touches converge.
type FlightSchedule struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	FlightID   uint      `gorm:"column:flight_id;not null;uniqueIndex:idx_schedule_flight_date,priority:1"`
	FlightDate string    `gorm:"column:flight_date;type:varchar(10);not null;uniqueIndex:idx_schedule_flight_date,priority:2"` // YYYY-MM-DD
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FlightSchedule) TableName() string {
	return "flight_schedules"
}
