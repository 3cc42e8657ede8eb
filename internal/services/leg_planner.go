package services

import (
	"context"
	"errors"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/flightmath"
	"flight-planning-service/internal/ports"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type LegRequest struct {
	From       string
	To         string
	Alternate  string
	AircraftID string
	Wind       domain.Wind
	// Nil means no reserve fuel.
	ReserveMinutes *float64
}

// Plan a single leg between two airports for one aircraft.
//
// The course is the initial great-circle bearing; the aircraft flies it at its
// cruise true airspeed through the given wind. When an alternate is named the
// alternate leg (destination to alternate) is resolved through the same wind
// and its own ground speed feeds the fuel plan.
//
// cache may be nil. Cache failures never fail the plan.
func PlanLeg(
	ctx context.Context,
	req LegRequest,
	airports ports.AirportRepository,
	aircraft ports.AircraftRepository,
	cache ports.LegCache,
) (*domain.LegPlan, error) {
	if err := validateLegRequest(req); err != nil {
		return nil, fmt.Errorf("plan leg: %w", err)
	}

	idents := []string{req.From, req.To}
	if req.Alternate != "" {
		idents = append(idents, req.Alternate)
	}
	resolved, err := resolveAirports(ctx, airports, idents)
	if err != nil {
		return nil, fmt.Errorf("plan leg: %w", err)
	}

	perf, err := aircraft.GetAircraft(ctx, req.AircraftID)
	if err != nil {
		return nil, fmt.Errorf("plan leg: %w", err)
	}

	from := resolved[domain.NormalizeIdent(req.From)]
	to := resolved[domain.NormalizeIdent(req.To)]
	var alternate *domain.Airport
	if req.Alternate != "" {
		a := resolved[domain.NormalizeIdent(req.Alternate)]
		alternate = &a
	}

	// The key covers the resolved data so reseeded airports or aircraft miss the cache.
	key := LegCacheKey(req, perf, from, to, alternate)
	if cache != nil {
		if plan, ok, err := cache.GetLeg(ctx, key); err != nil {
			slog.WarnContext(ctx, "leg cache get failed", slog.String("key", key), slog.Any("err", err))
		} else if ok {
			return plan, nil
		}
	}

	plan, err := computeLeg(from, to, alternate, perf, req.Wind, req.ReserveMinutes)
	if err != nil {
		return nil, fmt.Errorf("plan leg: %s -> %s: %w", req.From, req.To, err)
	}

	if cache != nil {
		if err := cache.PutLeg(ctx, key, plan); err != nil {
			slog.WarnContext(ctx, "leg cache put failed", slog.String("key", key), slog.Any("err", err))
		}
	}

	return plan, nil
}

// computeLeg runs the core calculations for one leg with everything already resolved.
func computeLeg(
	from, to domain.Airport,
	alternate *domain.Airport,
	perf domain.AircraftPerformance,
	wind domain.Wind,
	reserveMinutes *float64,
) (*domain.LegPlan, error) {
	distance, course, err := flightmath.DistanceAndBearing(from.Location, to.Location)
	if err != nil {
		return nil, err
	}

	wt, err := flightmath.WindTriangle(perf.CruiseSpeed, wind.Speed, wind.Direction, course)
	if err != nil {
		return nil, err
	}

	opts := domain.FuelPlanOptions{ReserveMinutes: reserveMinutes}
	plan := &domain.LegPlan{
		From:         from.Ident,
		To:           to.Ident,
		AircraftID:   perf.ID,
		DistanceNM:   distance,
		Course:       course,
		Wind:         wind,
		WindTriangle: wt,
	}

	if alternate != nil {
		altDistance, altCourse, err := flightmath.DistanceAndBearing(to.Location, alternate.Location)
		if err != nil {
			return nil, fmt.Errorf("alternate %s: %w", alternate.Ident, err)
		}
		altWT, err := flightmath.WindTriangle(perf.CruiseSpeed, wind.Speed, wind.Direction, altCourse)
		if err != nil {
			return nil, fmt.Errorf("alternate %s: %w", alternate.Ident, err)
		}

		altGS := altWT.GroundSpeed
		opts.AlternateDistance = &altDistance
		opts.AlternateGroundSpeed = &altGS
		plan.Alternate = alternate.Ident
	}

	fuel, err := flightmath.FuelConsumption(distance, wt.GroundSpeed, perf.FuelFlow, opts)
	if err != nil {
		return nil, err
	}

	plan.Fuel = fuel
	plan.FuelMargin = perf.FuelCapacity - fuel.TotalFuel
	plan.WithinCapacity = perf.CanCarry(fuel.TotalFuel)

	return plan, nil
}

// resolveAirports fetches all idents in one call and fails on the first unknown one.
func resolveAirports(ctx context.Context, repo ports.AirportRepository, idents []string) (map[string]domain.Airport, error) {
	found, err := repo.GetAirports(ctx, idents)
	if err != nil {
		return nil, fmt.Errorf("resolve airports: %w", err)
	}

	for _, id := range idents {
		if _, ok := found[domain.NormalizeIdent(id)]; !ok {
			return nil, fmt.Errorf("resolve airports: %q: %w", id, domain.ErrAirportNotFound)
		}
	}
	return found, nil
}

func validateLegRequest(req LegRequest) error {
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.To) == "" {
		return fmt.Errorf("%w: from and to must be non-empty", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.AircraftID) == "" {
		return fmt.Errorf("%w: aircraft id must be non-empty", domain.ErrInvalidInput)
	}
	if req.Wind.Speed < 0 {
		return fmt.Errorf("%w: Wind speed must not be negative", domain.ErrInvalidInput)
	}
	if req.ReserveMinutes != nil && *req.ReserveMinutes < 0 {
		return fmt.Errorf("%w: Reserve minutes must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// LegCacheKey builds a deterministic cache key from everything that determines
// a leg plan: the request, the resolved airport positions and the aircraft
// performance. alternate may be nil.
func LegCacheKey(req LegRequest, perf domain.AircraftPerformance, from, to domain.Airport, alternate *domain.Airport) string {
	reserve := "-"
	if req.ReserveMinutes != nil {
		reserve = formatKeyFloat(*req.ReserveMinutes)
	}

	alt := "-"
	if alternate != nil {
		alt = airportKey(*alternate)
	}

	return strings.Join([]string{
		airportKey(from),
		airportKey(to),
		alt,
		strings.ToUpper(strings.TrimSpace(perf.ID)),
		formatKeyFloat(perf.CruiseSpeed),
		formatKeyFloat(perf.FuelFlow),
		formatKeyFloat(perf.FuelCapacity),
		formatKeyFloat(flightmath.NormalizeHeading(req.Wind.Direction)),
		formatKeyFloat(req.Wind.Speed),
		reserve,
	}, "|")
}

func airportKey(a domain.Airport) string {
	return domain.NormalizeIdent(a.Ident) + "@" + formatKeyFloat(a.Location.Lat) + "," + formatKeyFloat(a.Location.Lon)
}

func formatKeyFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// IsClientError reports whether err was caused by the request rather than the system.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidCoordinate) ||
		errors.Is(err, domain.ErrAirportNotFound) ||
		errors.Is(err, domain.ErrAircraftNotFound)
}
