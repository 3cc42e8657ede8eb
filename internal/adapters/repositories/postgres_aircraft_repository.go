package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/platform/obs"
	"fmt"
	"strings"
)

// PostgreSQL-backed implementation of the AircraftRepository port.
type PostgresAircraftRepository struct{ DB *sql.DB }

func NewPostgresAircraftRepository(db *sql.DB) *PostgresAircraftRepository {
	return &PostgresAircraftRepository{DB: db}
}

// Return one aircraft performance profile by id.
func (p *PostgresAircraftRepository) GetAircraft(ctx context.Context, id string) (_ domain.AircraftPerformance, err error) {
	defer obs.Time(ctx, "aircraft.repo.Get")(&err)

	if p.DB == nil {
		return domain.AircraftPerformance{}, errors.New("postgres aircraft repository: DB is nil")
	}

	id = strings.ToUpper(strings.TrimSpace(id))
	query := `
	SELECT
		aircraft_id,
		name,
		cruise_speed_kt,
		fuel_flow_gph,
		fuel_capacity_gal
	FROM aircraft
	WHERE aircraft_id = $1;
	`

	var a domain.AircraftPerformance
	err = p.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.CruiseSpeed, &a.FuelFlow, &a.FuelCapacity)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AircraftPerformance{}, fmt.Errorf("get aircraft %q: %w", id, domain.ErrAircraftNotFound)
	}
	if err != nil {
		return domain.AircraftPerformance{}, fmt.Errorf("get aircraft %q: query aircraft table: %w", id, err)
	}

	return a, nil
}

// Return all aircraft stored in the database.
func (p *PostgresAircraftRepository) ListAircraft(ctx context.Context) ([]domain.AircraftPerformance, error) {
	if p.DB == nil {
		return nil, errors.New("postgres aircraft repository: DB is nil")
	}

	query := `
	SELECT
		aircraft_id,
		name,
		cruise_speed_kt,
		fuel_flow_gph,
		fuel_capacity_gal
	FROM aircraft
	ORDER BY aircraft_id;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list aircraft: query aircraft table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AircraftPerformance, 0, 16)
	for rows.Next() {
		var a domain.AircraftPerformance
		if err := rows.Scan(&a.ID, &a.Name, &a.CruiseSpeed, &a.FuelFlow, &a.FuelCapacity); err != nil {
			return nil, fmt.Errorf("list aircraft: scan row: %w", err)
		}
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list aircraft: row iteration: %w", err)
	}

	return out, nil
}
