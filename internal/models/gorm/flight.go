package gorm

import "time"

// Flight is the template a search enumerates: a numbered route with a fixed
// departure time-of-day. Recurring flights carry a FlightRecurrence; one-time
// flights carry exactly one pre-declared FlightSchedule instead.
type Flight struct {
	ID              uint      `gorm:"column:id;primaryKey"`
	FlightNumber    string    `gorm:"column:flight_number;type:varchar(16);not null;uniqueIndex"`
	SourceID        uint      `gorm:"column:source_id;not null;index"`
	DestinationID   uint      `gorm:"column:destination_id;not null;index"`
	DepartureTime   string    `gorm:"column:departure_time;type:varchar(5);not null"` // HH:MM
	DurationMinutes int       `gorm:"column:duration_minutes;not null"`
	IsRecurring     bool      `gorm:"column:is_recurring;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Source      *Airport          `gorm:"foreignKey:SourceID"`
	Destination *Airport          `gorm:"foreignKey:DestinationID"`
	Recurrence  *FlightRecurrence `gorm:"foreignKey:FlightID"`
	BaseSeats   []BaseFlightSeat  `gorm:"foreignKey:FlightID"`
	Schedules   []FlightSchedule  `gorm:"foreignKey:FlightID"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
