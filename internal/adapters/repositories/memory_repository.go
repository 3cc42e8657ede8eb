package repositories

import (
	"context"
	"flight-planning-service/internal/domain"
	"fmt"
	"sort"
	"strings"
)

// MemoryRepository serves airports and aircraft from maps built at startup.
// It backs tests and database-less runs; it is read-only after construction.
type MemoryRepository struct {
	airports map[string]domain.Airport
	aircraft map[string]domain.AircraftPerformance
}

func NewMemoryRepository(airports []domain.Airport, aircraft []domain.AircraftPerformance) *MemoryRepository {
	r := &MemoryRepository{
		airports: make(map[string]domain.Airport, len(airports)),
		aircraft: make(map[string]domain.AircraftPerformance, len(aircraft)),
	}
	for _, a := range airports {
		a.Ident = domain.NormalizeIdent(a.Ident)
		r.airports[a.Ident] = a
	}
	for _, a := range aircraft {
		a.ID = strings.ToUpper(strings.TrimSpace(a.ID))
		r.aircraft[a.ID] = a
	}
	return r
}

// NewMemoryRepositoryFromJSON loads the same seed files the database tool uses.
func NewMemoryRepositoryFromJSON(airportsPath, aircraftPath string) (*MemoryRepository, error) {
	airports, err := LoadAirportSeeds(airportsPath)
	if err != nil {
		return nil, fmt.Errorf("memory repository: %w", err)
	}
	aircraft, err := LoadAircraftSeeds(aircraftPath)
	if err != nil {
		return nil, fmt.Errorf("memory repository: %w", err)
	}
	return NewMemoryRepository(airports, aircraft), nil
}

func (r *MemoryRepository) GetAirports(ctx context.Context, idents []string) (map[string]domain.Airport, error) {
	out := make(map[string]domain.Airport, len(idents))
	for _, id := range uniqueIdents(idents) {
		if a, ok := r.airports[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetAircraft(ctx context.Context, id string) (domain.AircraftPerformance, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	a, ok := r.aircraft[id]
	if !ok {
		return domain.AircraftPerformance{}, fmt.Errorf("get aircraft %q: %w", id, domain.ErrAircraftNotFound)
	}

	return a, nil
}

func (r *MemoryRepository) ListAircraft(ctx context.Context) ([]domain.AircraftPerformance, error) {
	out := make([]domain.AircraftPerformance, 0, len(r.aircraft))
	for _, a := range r.aircraft {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepository) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	out := make([]domain.Airport, 0, len(r.airports))
	for _, a := range r.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ident < out[j].Ident })
	return out, nil
}
