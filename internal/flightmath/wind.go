package flightmath

import (
	"flight-planning-service/internal/domain"
	"fmt"
	"math"
)

// WindTriangle resolves the true airspeed, the wind (direction it blows
// from, in degrees true) and the desired course into ground speed, wind
// correction angle and the heading to fly.
//
// A positive correction angle means the heading is to the right of course.
// When the crosswind component exceeds the true airspeed the course cannot be
// held; the correction angle is clamped to ±90 degrees, CourseUnattainable is
// set and a defined, non-negative ground speed is still returned.
func WindTriangle(trueAirspeed, windSpeed, windDirection, course float64) (domain.WindTriangleResult, error) {
	if !finite(trueAirspeed, windSpeed, windDirection, course) {
		return domain.WindTriangleResult{}, fmt.Errorf("wind triangle: %w: arguments must be finite", domain.ErrInvalidInput)
	}
	if trueAirspeed <= 0 {
		return domain.WindTriangleResult{}, fmt.Errorf("wind triangle: %w: True airspeed must be positive", domain.ErrInvalidInput)
	}
	if windSpeed < 0 {
		return domain.WindTriangleResult{}, fmt.Errorf("wind triangle: %w: Wind speed must not be negative", domain.ErrInvalidInput)
	}

	angle := DegreesToRadians(windDirection - course)

	ratio := windSpeed * math.Sin(angle) / trueAirspeed
	wca := math.Asin(Clamp(ratio, -1, 1))

	// Wind from ahead of the course reduces ground speed.
	gs := trueAirspeed*math.Cos(wca) - windSpeed*math.Cos(angle)
	if gs < 0 {
		gs = 0
	}

	wcaDeg := RadiansToDegrees(wca)
	return domain.WindTriangleResult{
		GroundSpeed:         gs,
		WindCorrectionAngle: wcaDeg,
		Heading:             NormalizeHeading(course + wcaDeg),
		CourseUnattainable:  math.Abs(ratio) > 1,
	}, nil
}

// WindComponents splits a wind into its headwind and crosswind components
// relative to a course. Headwind is negative for a tailwind; crosswind is
// positive when the wind comes from the right of the course.
func WindComponents(windSpeed, windDirection, course float64) (headwind, crosswind float64) {
	angle := DegreesToRadians(windDirection - course)
	return windSpeed * math.Cos(angle), windSpeed * math.Sin(angle)
}
