package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler reports database reachability and uptime. The sqlx
// connection is nil when running on the SQLite driver; only Postgres gets
// the raw ping.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		dbStatus := "ok"
		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				dbStatus = "unreachable"
			}
		} else {
			dbStatus = "sqlite"
		}

		data := map[string]string{
			"database": dbStatus,
			"uptime":   time.Since(upSince).Round(time.Second).String(),
		}

		if dbStatus == "unreachable" {
			respondError(w, initTime, "Database unreachable", http.StatusServiceUnavailable)
			return
		}
		respondSuccess(w, initTime, "Healthy", data)
	}
}
