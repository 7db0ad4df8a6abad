package gorm

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekdaySet holds the weekdays (0=Sunday..6=Saturday) a recurring flight
// operates on. Stored as a comma-separated list so it round-trips through
// both Postgres and SQLite.
type WeekdaySet []int

// Scan implements the sql.Scanner interface for WeekdaySet
func (s *WeekdaySet) Scan(value interface{}) error {
	if value == nil {
		*s = WeekdaySet{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported weekday set type %T", value)
	}

	if raw == "" {
		*s = WeekdaySet{}
		return nil
	}

	parts := strings.Split(raw, ",")
	days := make(WeekdaySet, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("invalid weekday %q: %w", p, err)
		}
		days = append(days, d)
	}
	*s = days
	return nil
}

// Value implements the driver.Valuer interface for WeekdaySet
func (s WeekdaySet) Value() (driver.Value, error) {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ","), nil
}

// Contains reports whether the set includes the given weekday.
func (s WeekdaySet) Contains(day time.Weekday) bool {
	for _, d := range s {
		if d == int(day) {
			return true
		}
	}
	return false
}

// Everyday reports whether the set covers all seven weekdays.
func (s WeekdaySet) Everyday() bool {
	if len(s) < 7 {
		return false
	}
	for d := 0; d < 7; d++ {
		if !s.Contains(time.Weekday(d)) {
			return false
		}
	}
	return true
}

// FlightRecurrence bounds a recurring flight: the weekdays it operates on
// and the validity window. EndDate nil means open-ended.
type FlightRecurrence struct {
	ID         uint       `gorm:"column:id;primaryKey"`
	FlightID   uint       `gorm:"column:flight_id;not null;uniqueIndex"`
	DaysOfWeek WeekdaySet `gorm:"column:days_of_week;type:varchar(20);not null"`
	StartDate  string     `gorm:"column:start_date;type:varchar(10);not null"` // YYYY-MM-DD
	EndDate    *string    `gorm:"column:end_date;type:varchar(10)"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (FlightRecurrence) TableName() string {
	return "flight_recurrences"
}
