package services

import (
	"context"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/ports"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Maximum number of legs computed at once.
const routeLegConcurrency = 4

type RouteRequest struct {
	// Airports in the order they are flown; at least two.
	Waypoints  []string
	AircraftID string
	Wind       domain.Wind
	// Applied to the final leg only.
	Alternate      string
	ReserveMinutes *float64
}

// Plan a fixed route as consecutive legs flown in the order given.
//
// The route is not reordered or optimized. Reserve and alternate fuel are
// carried by the final leg; totals are the sums over all legs.
func PlanRoute(
	ctx context.Context,
	req RouteRequest,
	airports ports.AirportRepository,
	aircraft ports.AircraftRepository,
) (*domain.RoutePlan, error) {
	if len(req.Waypoints) < 2 {
		return nil, fmt.Errorf("plan route: %w: at least two waypoints are required", domain.ErrInvalidInput)
	}
	for i, w := range req.Waypoints {
		if strings.TrimSpace(w) == "" {
			return nil, fmt.Errorf("plan route: %w: waypoint %d is empty", domain.ErrInvalidInput, i+1)
		}
	}
	if req.ReserveMinutes != nil && *req.ReserveMinutes < 0 {
		return nil, fmt.Errorf("plan route: %w: Reserve minutes must not be negative", domain.ErrInvalidInput)
	}

	idents := append([]string{}, req.Waypoints...)
	if req.Alternate != "" {
		idents = append(idents, req.Alternate)
	}
	resolved, err := resolveAirports(ctx, airports, idents)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	perf, err := aircraft.GetAircraft(ctx, req.AircraftID)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	legs := make([]domain.LegPlan, len(req.Waypoints)-1)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(routeLegConcurrency)

	for i := range legs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			from := resolved[domain.NormalizeIdent(req.Waypoints[i])]
			to := resolved[domain.NormalizeIdent(req.Waypoints[i+1])]

			var alternate *domain.Airport
			var reserve *float64
			if i == len(legs)-1 {
				reserve = req.ReserveMinutes
				if req.Alternate != "" {
					a := resolved[domain.NormalizeIdent(req.Alternate)]
					alternate = &a
				}
			}

			leg, err := computeLeg(from, to, alternate, perf, req.Wind, reserve)
			if err != nil {
				return fmt.Errorf("leg %d %s -> %s: %w", i+1, from.Ident, to.Ident, err)
			}
			legs[i] = *leg
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	plan := &domain.RoutePlan{
		AircraftID: perf.ID,
		Legs:       legs,
	}
	for _, leg := range legs {
		plan.TotalDistanceNM += leg.DistanceNM
		plan.TotalFlightTime += leg.Fuel.FlightTime
		plan.TotalFuel += leg.Fuel.TotalFuel
	}
	plan.FuelMargin = perf.FuelCapacity - plan.TotalFuel
	plan.WithinCapacity = perf.CanCarry(plan.TotalFuel)

	return plan, nil
}
