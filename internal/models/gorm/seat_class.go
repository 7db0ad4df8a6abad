package gorm

import "time"

// SeatClass is a directory row; lookups fold case so "Economy" and
// "economy" resolve to the same class.
type SeatClass struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (SeatClass) TableName() string {
	return "seat_classes"
}
