package flightmath

import (
	"flight-planning-service/internal/domain"
	"fmt"
)

// FuelConsumption converts a leg's distance, ground speed and fuel flow into
// flight time and fuel burn, adding reserve and alternate fuel when the
// options request them.
//
// The alternate leg is flown at its own ground speed.
func FuelConsumption(distance, groundSpeed, fuelFlow float64, opts domain.FuelPlanOptions) (domain.FuelPlanResult, error) {
	if err := validateFuelInputs(distance, groundSpeed, fuelFlow, opts); err != nil {
		return domain.FuelPlanResult{}, fmt.Errorf("fuel consumption: %w", err)
	}

	flightTime := distance / groundSpeed
	fuelUsed := flightTime * fuelFlow

	var reserve float64
	if opts.ReserveMinutes != nil {
		reserve = *opts.ReserveMinutes / 60 * fuelFlow
	}

	var alternate float64
	if opts.AlternateDistance != nil && opts.AlternateGroundSpeed != nil {
		alternate = *opts.AlternateDistance / *opts.AlternateGroundSpeed * fuelFlow
	}

	return domain.FuelPlanResult{
		FlightTime:    flightTime,
		FuelUsed:      fuelUsed,
		ReserveFuel:   reserve,
		AlternateFuel: alternate,
		TotalFuel:     fuelUsed + reserve + alternate,
	}, nil
}

// Endurance returns how many hours the given fuel lasts at a fuel flow.
func Endurance(fuel, fuelFlow float64) (float64, error) {
	if !finite(fuel, fuelFlow) || fuel < 0 {
		return 0, fmt.Errorf("endurance: %w: Fuel must not be negative", domain.ErrInvalidInput)
	}
	if fuelFlow <= 0 {
		return 0, fmt.Errorf("endurance: %w: Fuel flow must be positive", domain.ErrInvalidInput)
	}
	return fuel / fuelFlow, nil
}

func validateFuelInputs(distance, groundSpeed, fuelFlow float64, opts domain.FuelPlanOptions) error {
	// NaN compares false against everything, so check finiteness before sign.
	switch {
	case !finite(distance) || distance <= 0:
		return fmt.Errorf("%w: Distance must be positive", domain.ErrInvalidInput)
	case !finite(groundSpeed) || groundSpeed <= 0:
		return fmt.Errorf("%w: Ground speed must be positive", domain.ErrInvalidInput)
	case !finite(fuelFlow) || fuelFlow <= 0:
		return fmt.Errorf("%w: Fuel flow must be positive", domain.ErrInvalidInput)
	}

	if m := opts.ReserveMinutes; m != nil && (!finite(*m) || *m < 0) {
		return fmt.Errorf("%w: Reserve minutes must not be negative", domain.ErrInvalidInput)
	}
	if opts.AlternateDistance != nil && opts.AlternateGroundSpeed != nil {
		if d := *opts.AlternateDistance; !finite(d) || d < 0 {
			return fmt.Errorf("%w: Alternate distance must not be negative", domain.ErrInvalidInput)
		}
		if gs := *opts.AlternateGroundSpeed; !finite(gs) || gs <= 0 {
			return fmt.Errorf("%w: Alternate ground speed must be positive", domain.ErrInvalidInput)
		}
	}
	return nil
}
