package gorm

import "time"

// Airport is a directory row; city is the external search key.
type Airport struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	City      string    `gorm:"column:city;type:varchar(100);not null;index"`
	Code      string    `gorm:"column:code;type:varchar(8);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
