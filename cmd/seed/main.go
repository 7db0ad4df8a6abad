package main

import (
	"context"
	"log"
	"os"

	"skyfare/reservations/internal/config"
	"skyfare/reservations/internal/db"
	"skyfare/reservations/internal/logging"
	"skyfare/reservations/internal/seed"
)

// Seeds the flight catalog from the data files in FLIGHT_DATA_DIR.
// Destructive: wipes existing catalog and inventory rows first.
func main() {
	log.SetOutput(os.Stdout)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	orm, err := db.InitORM(cfg)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(orm); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	loader := seed.NewLoader(orm, cfg.FlightDataDir)
	if err := loader.Load(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	logging.Info("Catalog seed complete", "data_dir", cfg.FlightDataDir)
}
