package domain

import "errors"

var (
	// A latitude magnitude above 90 degrees (or a non-finite coordinate).
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// A non-positive distance, speed or fuel flow, or another out-of-domain numeric input.
	ErrInvalidInput = errors.New("invalid input")

	ErrAirportNotFound  = errors.New("airport not found")
	ErrAircraftNotFound = errors.New("aircraft not found")
)
