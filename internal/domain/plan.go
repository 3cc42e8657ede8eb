package domain

// Wind as reported: Direction is where the wind blows FROM, in degrees true,
// Speed in knots.
type Wind struct {
	Direction float64
	Speed     float64
}

// Output of the wind triangle for one course.
// WindCorrectionAngle is positive when the aircraft must turn right of course.
// CourseUnattainable is set when the crosswind exceeds the true airspeed and the
// correction angle had to be clamped to ±90 degrees.
type WindTriangleResult struct {
	GroundSpeed         float64
	WindCorrectionAngle float64
	Heading             float64
	CourseUnattainable  bool
}

// Optional contributions to a fuel plan. A nil field contributes nothing.
//   - ReserveMinutes adds ReserveMinutes/60 hours of fuel at the planned fuel flow.
//   - AlternateDistance and AlternateGroundSpeed together add the fuel needed to fly
//     to the alternate airport; either one alone is ignored.
type FuelPlanOptions struct {
	ReserveMinutes       *float64
	AlternateDistance    *float64
	AlternateGroundSpeed *float64
}

// Times in hours, fuel in gallons.
type FuelPlanResult struct {
	FlightTime    float64
	FuelUsed      float64
	ReserveFuel   float64
	AlternateFuel float64
	TotalFuel     float64
}

// Represents one planned leg between two airports.
// A LegPlan is immutable planning data and contains no side effects.
type LegPlan struct {
	From         string
	To           string
	Alternate    string
	AircraftID   string
	DistanceNM   float64
	Course       float64
	Wind         Wind
	WindTriangle WindTriangleResult
	Fuel         FuelPlanResult

	// Usable fuel left after TotalFuel; negative when the aircraft cannot carry the plan.
	FuelMargin     float64
	WithinCapacity bool
}

// Represents a fixed sequence of legs flown in the order given by the caller.
type RoutePlan struct {
	AircraftID      string
	Legs            []LegPlan
	TotalDistanceNM float64
	TotalFlightTime float64
	TotalFuel       float64
	FuelMargin      float64
	WithinCapacity  bool
}
