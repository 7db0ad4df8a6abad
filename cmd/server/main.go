package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyfare/reservations/internal/api"
	"skyfare/reservations/internal/config"
	"skyfare/reservations/internal/db"
	"skyfare/reservations/internal/logging"
	"skyfare/reservations/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Skyfare reservations starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
	)

	orm, err := db.InitORM(cfg)
	if err != nil {
		logging.Error("Failed to connect database", "error", err.Error())
		log.Fatalf("Failed to connect database: %v", err)
	}
	logging.Info("Connected to database (GORM)", "driver", cfg.DBDriver)

	// The health check pings a raw sqlx connection; only meaningful on Postgres.
	if cfg.DBDriver == "postgres" {
		if err := db.InitPostgres(cfg); err != nil {
			logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
			log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
		}
		logging.Info("Connected to Postgres (sqlx)")
	}

	deps, err := api.InitDependencies(cfg, orm)
	if err != nil {
		logging.Error("Failed to initialize dependencies", "error", err.Error())
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Services.Cache.Close()

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, upSince)

	// Metrics endpoint lives outside the chi router.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting", "addr", addr, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
