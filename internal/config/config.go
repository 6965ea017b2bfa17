package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server reads from the environment.
type Config struct {
	Port         string
	StoreBackend string // "memory" or "database"
	DBDriver     string // "postgres" or "sqlite"
	DBDSN        string
	// DigestSchedule is a cron expression; empty disables the digest job.
	DigestSchedule string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads a .env file when present, then the process environment.
func Load() Config {
	// Missing .env is fine; containers set real env vars instead.
	_ = godotenv.Load()

	return Config{
		Port:           getenv("PORT", "8080"),
		StoreBackend:   getenv("STORE_BACKEND", "memory"),
		DBDriver:       getenv("DB_DRIVER", "postgres"),
		DBDSN:          getenv("DB_DSN", "host=localhost user=postgres password=password dbname=jobportal port=5432 sslmode=disable"),
		DigestSchedule: os.Getenv("DIGEST_SCHEDULE"),
		RateLimitRPS:   100,
		RateLimitBurst: 200,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
