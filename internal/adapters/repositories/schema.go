package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flight-planning-service/internal/domain"
	"fmt"
	"os"
	"strings"
)

// Initialize the PostgreSQL database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAirportsQuery := `
	CREATE TABLE IF NOT EXISTS airports (
		ident TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createAircraftQuery := `
	CREATE TABLE IF NOT EXISTS aircraft (
		aircraft_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		cruise_speed_kt DOUBLE PRECISION NOT NULL CHECK (cruise_speed_kt > 0),
		fuel_flow_gph DOUBLE PRECISION NOT NULL CHECK (fuel_flow_gph > 0),
		fuel_capacity_gal DOUBLE PRECISION NOT NULL CHECK (fuel_capacity_gal > 0)
	);
	`

	createLegCacheQuery := `
	CREATE TABLE IF NOT EXISTS leg_cache (
		cache_key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_leg_cache_created_at
	ON leg_cache(created_at);
	`

	statements := []string{
		createAirportsQuery,
		createAircraftQuery,
		createLegCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AirportSeed struct {
	Ident string  `json:"ident"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type AircraftSeed struct {
	AircraftID   string  `json:"aircraft_id"`
	Name         string  `json:"name"`
	CruiseSpeed  float64 `json:"cruise_speed_kt"`
	FuelFlow     float64 `json:"fuel_flow_gph"`
	FuelCapacity float64 `json:"fuel_capacity_gal"`
}

// Read and validate airport seed data from a JSON file.
func LoadAirportSeeds(jsonPath string) ([]domain.Airport, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed airports: read %q: %w", jsonPath, err)
	}

	var data []AirportSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed airports: parse json: %w", err)
	}

	airports := make([]domain.Airport, 0, len(data))
	for i, item := range data {
		ident := domain.NormalizeIdent(item.Ident)
		if ident == "" {
			return nil, fmt.Errorf("seed airports: item at index %d: ident cannot be empty", i+1)
		}

		loc := domain.GeoPoint{Lat: item.Lat, Lon: item.Lon}
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("seed airports: ident %s: %w", ident, err)
		}
		airports = append(airports, domain.Airport{Ident: ident, Name: strings.TrimSpace(item.Name), Location: loc})
	}

	return airports, nil
}

// Read and validate aircraft performance seed data from a JSON file.
func LoadAircraftSeeds(jsonPath string) ([]domain.AircraftPerformance, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed aircraft: read %q: %w", jsonPath, err)
	}

	var data []AircraftSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed aircraft: parse json: %w", err)
	}

	profiles := make([]domain.AircraftPerformance, 0, len(data))
	for _, item := range data {
		a := domain.AircraftPerformance{
			ID:           strings.ToUpper(strings.TrimSpace(item.AircraftID)),
			Name:         strings.TrimSpace(item.Name),
			CruiseSpeed:  item.CruiseSpeed,
			FuelFlow:     item.FuelFlow,
			FuelCapacity: item.FuelCapacity,
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("seed aircraft: %w", err)
		}
		profiles = append(profiles, a)
	}

	return profiles, nil
}

// Populate the database with airport and aircraft data from JSON files.
func SeedFromJSON(ctx context.Context, db *sql.DB, airportsPath, aircraftPath string) error {
	airports, err := LoadAirportSeeds(airportsPath)
	if err != nil {
		return err
	}
	aircraft, err := LoadAircraftSeeds(aircraftPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	airportStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO airports (ident, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (ident) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("seed airports: prepare insert: %w", err)
	}
	defer airportStmt.Close()

	for _, a := range airports {
		if _, err := airportStmt.ExecContext(ctx, a.Ident, a.Name, a.Location.Lat, a.Location.Lon); err != nil {
			return fmt.Errorf("seed airports: insert ident=%s: %w", a.Ident, err)
		}
	}

	aircraftStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO aircraft (aircraft_id, name, cruise_speed_kt, fuel_flow_gph, fuel_capacity_gal)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (aircraft_id) DO UPDATE
	SET name = EXCLUDED.name,
		cruise_speed_kt = EXCLUDED.cruise_speed_kt,
		fuel_flow_gph = EXCLUDED.fuel_flow_gph,
		fuel_capacity_gal = EXCLUDED.fuel_capacity_gal;
	`)
	if err != nil {
		return fmt.Errorf("seed aircraft: prepare insert: %w", err)
	}
	defer aircraftStmt.Close()

	for _, a := range aircraft {
		if _, err := aircraftStmt.ExecContext(ctx, a.ID, a.Name, a.CruiseSpeed, a.FuelFlow, a.FuelCapacity); err != nil {
			return fmt.Errorf("seed aircraft: insert aircraft_id=%s: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
