package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/platform/obs"
	"fmt"
)

// PostgresAirportRepository resolves airport idents from the airports table.
type PostgresAirportRepository struct {
	DB *sql.DB
}

func NewPostgresAirportRepository(db *sql.DB) *PostgresAirportRepository {
	return &PostgresAirportRepository{DB: db}
}

// Fetch airports for the given idents in one query.
func (p *PostgresAirportRepository) GetAirports(
	ctx context.Context,
	idents []string,
) (_ map[string]domain.Airport, err error) {
	defer obs.Time(ctx, "airport.repo.GetAirports")(&err)

	if p.DB == nil {
		return nil, errors.New("airport repository: db is nil")
	}

	uniq := uniqueIdents(idents)
	if len(uniq) == 0 {
		return map[string]domain.Airport{}, nil
	}

	q := `
	SELECT ident, name, lat, lon
	FROM airports
	WHERE ident = ANY($1::text[]);
	`

	rows, err := p.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get airports: query airports table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Airport, len(uniq))
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Ident, &a.Name, &a.Location.Lat, &a.Location.Lon); err != nil {
			return nil, fmt.Errorf("get airports: scan rows: %w", err)
		}
		out[a.Ident] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get airports: row iteration: %w", err)
	}

	return out, nil
}

// uniqueIdents normalizes idents and drops blanks and duplicates, keeping first-seen order.
func uniqueIdents(idents []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(idents))
	for _, id := range idents {
		id = domain.NormalizeIdent(id)
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	return uniq
}

// Return all airports stored in the database.
func (p *PostgresAirportRepository) ListAirports(ctx context.Context) (_ []domain.Airport, err error) {
	defer obs.Time(ctx, "airport.repo.ListAirports")(&err)

	if p.DB == nil {
		return nil, errors.New("airport repository: db is nil")
	}

	rows, err := p.DB.QueryContext(ctx, `SELECT ident, name, lat, lon FROM airports ORDER BY ident;`)
	if err != nil {
		return nil, fmt.Errorf("list airports: query airports table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Airport, 0, 64)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Ident, &a.Name, &a.Location.Lat, &a.Location.Lon); err != nil {
			return nil, fmt.Errorf("list airports: scan row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airports: row iteration: %w", err)
	}

	return out, nil
}
