package config

import (
	"fmt"
	"os"
)

// Config holds every environment-driven setting in one place.
type Config struct {
	AppEnv string
	Port   string

	// Database. Driver is "postgres" in production; "sqlite" gives a
	// zero-dependency local setup backed by SQLitePath.
	DBDriver   string
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string
	SQLitePath string

	// Directory cache backend: "memory" or "redis".
	CacheBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Directory with the catalog data files consumed by the seed loader.
	FlightDataDir string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		AppEnv:        envOr("APP_ENV", "development"),
		Port:          envOr("PORT", "8080"),
		DBDriver:      envOr("DB_DRIVER", "postgres"),
		PGHost:        envOr("PG_HOST", "localhost"),
		PGPort:        envOr("PG_PORT", "5432"),
		PGUser:        envOr("PG_USER", "postgres"),
		PGPassword:    os.Getenv("PG_PASSWORD"),
		PGDatabase:    envOr("PG_DB", "skyfare"),
		SQLitePath:    envOr("SQLITE_PATH", "skyfare.db"),
		CacheBackend:  envOr("CACHE_BACKEND", "memory"),
		RedisHost:     envOr("REDIS_HOST", "localhost"),
		RedisPort:     envOr("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		FlightDataDir: envOr("FLIGHT_DATA_DIR", "data"),
	}
}

// PostgresDSN builds the DSN shared by the GORM and sqlx connections.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns host:port for the Redis cache backend.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
