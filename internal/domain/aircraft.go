package domain

import "fmt"

// Caller-supplied aircraft performance profile.
// CruiseSpeed is the true airspeed in knots, FuelFlow is gallons per hour
// at cruise and FuelCapacity is usable fuel in gallons.
type AircraftPerformance struct {
	ID           string
	Name         string
	CruiseSpeed  float64
	FuelFlow     float64
	FuelCapacity float64
}

// Validate checks that every performance number is usable by the fuel planner.
func (a AircraftPerformance) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: aircraft id must be non-empty", ErrInvalidInput)
	}
	if a.CruiseSpeed <= 0 {
		return fmt.Errorf("%w: aircraft %s cruise speed must be positive (got %v)", ErrInvalidInput, a.ID, a.CruiseSpeed)
	}
	if a.FuelFlow <= 0 {
		return fmt.Errorf("%w: aircraft %s fuel flow must be positive (got %v)", ErrInvalidInput, a.ID, a.FuelFlow)
	}
	if a.FuelCapacity <= 0 {
		return fmt.Errorf("%w: aircraft %s fuel capacity must be positive (got %v)", ErrInvalidInput, a.ID, a.FuelCapacity)
	}
	return nil
}

// CanCarry reports whether the usable fuel covers the given requirement.
func (a AircraftPerformance) CanCarry(fuel float64) bool {
	return fuel <= a.FuelCapacity
}
