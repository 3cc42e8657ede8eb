package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the service configuration assembled from the environment
// (optionally seeded from a .env file).
type Config struct {
	Port             string
	DatabaseURL      string
	RedisURL         string
	LegCacheTTL      time.Duration
	LogLevel         string
	LogDir           string
	RateLimitRPS     float64
	RateLimitBurst   int
	AirportSeedPath  string
	AircraftSeedPath string
	AirportCacheSize int
	AirportCacheTTL  time.Duration
}

// Load reads .env files (when present) into the process environment and builds a Config.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Info("No .env file found (using environment variables)")
	}

	cfg := Config{
		Port:             Get("PORT", "8080"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		LogLevel:         Get("LOG_LEVEL", "info"),
		LogDir:           os.Getenv("LOG_DIR"),
		AirportSeedPath:  Get("AIRPORT_SEED_PATH", "data/seeds/airports.json"),
		AircraftSeedPath: Get("AIRCRAFT_SEED_PATH", "data/seeds/aircraft.json"),
	}

	var err error
	if cfg.LegCacheTTL, err = GetDuration("LEG_CACHE_TTL", time.Hour); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.AirportCacheTTL, err = GetDuration("AIRPORT_CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.RateLimitRPS, err = GetFloat("RATE_LIMIT_RPS", 10); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.RateLimitBurst, err = GetInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.AirportCacheSize, err = GetInt("AIRPORT_CACHE_SIZE", 1024); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as int: %w", key, v, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as float: %w", key, v, err)
	}
	return f, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q as duration: %w", key, v, err)
	}
	return d, nil
}
