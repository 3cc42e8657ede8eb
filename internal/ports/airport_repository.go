package ports

import (
	"context"
	"flight-planning-service/internal/domain"
)

// Contract for resolving airport identifiers to positions.
type AirportRepository interface {
	// Return the airports for the given idents, keyed by normalized ident.
	// Idents that do not exist are absent from the map; that is not an error.
	GetAirports(ctx context.Context, idents []string) (map[string]domain.Airport, error)
}

// Optional extension of AirportRepository that can enumerate every airport.
type AirportCatalog interface {
	AirportRepository
	// Return all airports ordered by ident.
	ListAirports(ctx context.Context) ([]domain.Airport, error)
}
