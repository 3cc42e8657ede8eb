package services

import (
	"context"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/flightmath"
	"flight-planning-service/internal/ports"
	"fmt"
	"math"
	"sort"
)

// An airport with its great-circle distance and bearing from a reference point.
type AirportDistance struct {
	Airport    domain.Airport
	DistanceNM float64
	Bearing    float64
}

// Return the limit airports closest to origin, nearest first.
//
// Airports within maxDistanceNM are considered (0 means no limit). Equal
// distances are ordered by ident so results are deterministic.
func NearestAirports(
	ctx context.Context,
	origin domain.GeoPoint,
	limit int,
	maxDistanceNM float64,
	catalog ports.AirportCatalog,
) ([]AirportDistance, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("nearest airports: %w", err)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("nearest airports: %w: limit must be positive", domain.ErrInvalidInput)
	}
	if math.IsNaN(maxDistanceNM) || math.IsInf(maxDistanceNM, 0) || maxDistanceNM < 0 {
		return nil, fmt.Errorf("nearest airports: %w: max distance must be finite and not negative", domain.ErrInvalidInput)
	}
	if catalog == nil {
		return nil, errors.New("nearest airports: catalog must be non-nil")
	}

	all, err := catalog.ListAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("nearest airports: list airports: %w", err)
	}

	candidates := make([]AirportDistance, 0, len(all))
	for _, a := range all {
		d, b, err := flightmath.DistanceAndBearing(origin, a.Location)
		if err != nil {
			return nil, fmt.Errorf("nearest airports: airport %s: %w", a.Ident, err)
		}
		if maxDistanceNM > 0 && d > maxDistanceNM {
			continue
		}
		candidates = append(candidates, AirportDistance{Airport: a, DistanceNM: d, Bearing: b})
	}

	// Tie-breaker ensures deterministic ordering when distances are equal.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceNM != candidates[j].DistanceNM {
			return candidates[i].DistanceNM < candidates[j].DistanceNM
		}
		return candidates[i].Airport.Ident < candidates[j].Airport.Ident
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
