package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// HomePlace is the place the scheduler keeps refreshed and the
	// /sun/home endpoint serves, mirroring the app's default city.
	HomePlace string

	// Default past/future day window for lookups that do not specify one.
	PastDays   int
	FutureDays int

	// Language of geocoded names, date labels and error messages.
	Language string

	// RefreshInterval controls how often the home calendar is refetched.
	RefreshInterval time.Duration

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// Override URLs for the Open-Meteo hosts; empty means the public
	// endpoints. Tests point these at local fakes.
	GeocodingURL string
	ForecastURL  string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.HomePlace = getenvDefault("HOME_PLACE", "Wrocław")
	cfg.PastDays = getenvInt("PAST_DAYS", 7)
	cfg.FutureDays = getenvInt("FUTURE_DAYS", 14)
	cfg.Language = getenvDefault("UI_LANGUAGE", "pl")

	refreshStr := getenvDefault("REFRESH_INTERVAL", "6h")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.GeocodingURL = os.Getenv("GEOCODING_URL")
	cfg.ForecastURL = os.Getenv("FORECAST_URL")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
