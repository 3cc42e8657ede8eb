package main

import (
	"context"
	"database/sql"
	"flag"
	"flight-planning-service/internal/adapters/cache"
	"flight-planning-service/internal/adapters/repositories"
	"flight-planning-service/internal/config"
	"flight-planning-service/internal/platform/db"
	"flight-planning-service/internal/platform/logging"
	"fmt"
	"log/slog"
	"os"
	"time"
)

func main() {
	purge := flag.Bool("purge-cache", false, "delete expired leg cache rows after seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("err", err))
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, "")
	if err != nil {
		slog.Error("logging", slog.Any("err", err))
		os.Exit(1)
	}
	slog.SetDefault(logger.Logger)

	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("open database", slog.Any("err", err))
		os.Exit(1)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := initAndSeed(ctx, database, cfg); err != nil {
		slog.Error("dbtool failed", slog.Any("err", err))
		os.Exit(1)
	}

	if *purge {
		n, err := cache.NewSQLLegCache(database, cfg.LegCacheTTL).Purge(ctx)
		if err != nil {
			slog.Error("purge failed", slog.Any("err", err))
			os.Exit(1)
		}
		slog.Info("leg cache purged", slog.Int64("rows", n))
	}
}

func initAndSeed(ctx context.Context, database *sql.DB, cfg config.Config) error {
	slog.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, database); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	slog.Info("Schema ready.")

	slog.Info("Seeding database...",
		slog.String("airports", cfg.AirportSeedPath), slog.String("aircraft", cfg.AircraftSeedPath))
	if err := repositories.SeedFromJSON(ctx, database, cfg.AirportSeedPath, cfg.AircraftSeedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	slog.Info("Seeding complete.")

	return nil
}
