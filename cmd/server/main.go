package main

import (
	"context"
	"database/sql"
	"errors"
	"flight-planning-service/internal/adapters/cache"
	"flight-planning-service/internal/adapters/repositories"
	"flight-planning-service/internal/api"
	"flight-planning-service/internal/config"
	"flight-planning-service/internal/platform/db"
	"flight-planning-service/internal/platform/logging"
	"flight-planning-service/internal/platform/metrics"
	"flight-planning-service/internal/ports"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// How often expired rows are removed from the SQL leg cache.
const legCachePurgeInterval = 10 * time.Minute

// main is the application composition root.
// It wires concrete adapters (PostgreSQL or seed files, Redis) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("err", err))
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		slog.Error("logging", slog.Any("err", err))
		os.Exit(1)
	}
	defer logger.Close()
	slog.SetDefault(logger.Logger)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", slog.Any("err", err))
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewCollector()

	var (
		database *sql.DB
		airports ports.AirportCatalog
		aircraft ports.AircraftRepository
	)

	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		airports = repositories.NewPostgresAirportRepository(database)
		aircraft = repositories.NewPostgresAircraftRepository(database)
		slog.Info("using postgres repositories")
	} else {
		repo, err := repositories.NewMemoryRepositoryFromJSON(cfg.AirportSeedPath, cfg.AircraftSeedPath)
		if err != nil {
			return err
		}
		airports, aircraft = repo, repo
		slog.Info("DATABASE_URL not set, serving seed files from memory",
			slog.String("airports", cfg.AirportSeedPath), slog.String("aircraft", cfg.AircraftSeedPath))
	}

	// Airport lookups dominate planning requests and the data changes rarely.
	airports = cache.NewLRUAirportRepository(airports, cfg.AirportCacheSize, cfg.AirportCacheTTL)

	var (
		legCache ports.LegCache
		sqlCache *cache.SQLLegCache
	)
	switch {
	case cfg.RedisURL != "":
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		legCache = cache.NewRedisLegCache(client, cfg.LegCacheTTL)
		slog.Info("leg cache: redis")
	case database != nil:
		sqlCache = cache.NewSQLLegCache(database, cfg.LegCacheTTL)
		legCache = sqlCache
		slog.Info("leg cache: postgres")
	default:
		slog.Info("leg cache: disabled")
	}
	if legCache != nil {
		legCache = cache.NewInstrumentedLegCache(legCache, m)
	}

	var limiter *api.IPRateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = api.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}

	router := api.NewRouter(api.Deps{
		Airports: airports,
		Aircraft: aircraft,
		LegCache: legCache,
		Metrics:  m,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		slog.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if sqlCache != nil {
		eg.Go(func() error {
			purgeLegCache(ctx, sqlCache)
			return nil
		})
	}

	return eg.Wait()
}

func purgeLegCache(ctx context.Context, c *cache.SQLLegCache) {
	t := time.NewTicker(legCachePurgeInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := c.Purge(ctx)
			if err != nil {
				slog.Warn("purge leg cache", slog.Any("err", err))
				continue
			}
			slog.Debug("purged leg cache", slog.Int64("rows", n))
		}
	}
}
