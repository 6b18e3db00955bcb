package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"titansync/internal/infrastructure/servicetitan"
)

// Config carries everything the sync and reconcile binaries need from
// the environment. The API server reads its own variables directly in
// the routes package.
type Config struct {
	ServiceTitan servicetitan.Config

	// ReportLocation is the timezone used to bucket reconciliation
	// reports by day.
	ReportLocation *time.Location
}

// Load reads the environment and fails fast on anything required.
// godotenv has already merged .env into the environment by the time
// this runs.
func Load() Config {
	st := servicetitan.Config{
		BaseURL:      os.Getenv("ST_BASE_URL"),
		TokenURL:     os.Getenv("ST_TOKEN_URL"),
		TenantID:     mustGetenv("ST_TENANT_ID"),
		AppKey:       mustGetenv("ST_APP_KEY"),
		ClientID:     mustGetenv("ST_CLIENT_ID"),
		ClientSecret: mustGetenv("ST_CLIENT_SECRET"),
		PageSize:     getenvInt("ST_PAGE_SIZE", 0),
		PageDelay:    time.Duration(getenvInt("ST_PAGE_DELAY_MS", 0)) * time.Millisecond,
	}

	tz := getenvDefault("REPORT_TIMEZONE", "America/Chicago")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("[config] invalid REPORT_TIMEZONE %q: %v", tz, err)
	}

	return Config{
		ServiceTitan:   st,
		ReportLocation: loc,
	}
}

func mustGetenv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("[config] %s is required", key)
	}
	return v
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("[config] %s must be an integer, got %q", key, v)
	}
	return n
}
