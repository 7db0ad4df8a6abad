package db

import (
	"fmt"

	"skyfare/reservations/internal/config"
	gormModels "skyfare/reservations/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

// InitORM opens the GORM connection for the configured driver. The SQLite
// path is meant for local development; it auto-migrates since there is no
// external migration step for a throwaway file database.
func InitORM(cfg *config.Config) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	switch cfg.DBDriver {
	case "sqlite":
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err == nil {
			err = AutoMigrate(conn)
		}
	default:
		conn, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}

	PgDB = conn
	return conn, nil
}

// AutoMigrate creates the catalog and inventory tables together with the
// unique indexes the lazy materialization upserts depend on.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&gormModels.Airport{},
		&gormModels.SeatClass{},
		&gormModels.Flight{},
		&gormModels.FlightRecurrence{},
		&gormModels.BaseFlightSeat{},
		&gormModels.ClassPricing{},
		&gormModels.FlightSchedule{},
		&gormModels.FlightScheduleSeat{},
	)
}
