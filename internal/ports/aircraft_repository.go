package ports

import (
	"context"
	"flight-planning-service/internal/domain"
)

// Port: a boundary for retrieving aircraft performance profiles.
type AircraftRepository interface {
	// Retrieve one profile; returns domain.ErrAircraftNotFound when absent.
	GetAircraft(ctx context.Context, id string) (domain.AircraftPerformance, error)
	// Retrieve all profiles ordered by id.
	ListAircraft(ctx context.Context) ([]domain.AircraftPerformance, error)
}
