package db

import (
	"time"

	"skyfare/reservations/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

var DB *sqlx.DB

// InitPostgres opens the raw sqlx connection used by the health check. It
// retries briefly so the server survives the database coming up after it.
func InitPostgres(cfg *config.Config) error {
	dsn := cfg.PostgresDSN()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
