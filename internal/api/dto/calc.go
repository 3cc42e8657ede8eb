package dto

// Pointers distinguish a missing coordinate from 0.
type GeoPointRequest struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

type DistanceRequest struct {
	From GeoPointRequest `json:"from"`
	To   GeoPointRequest `json:"to"`
}

type DistanceResponse struct {
	DistanceNM           float64 `json:"distance_nm"`
	DistanceStatuteMiles float64 `json:"distance_sm"`
	DistanceKm           float64 `json:"distance_km"`
	BearingDeg           float64 `json:"bearing_deg"`
}

type WindTriangleRequest struct {
	TrueAirspeed  float64 `json:"true_airspeed"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Course        float64 `json:"course"`
}

type WindTriangleResponse struct {
	GroundSpeed         float64 `json:"ground_speed"`
	WindCorrectionAngle float64 `json:"wind_correction_angle"`
	Heading             float64 `json:"heading"`
	CourseUnattainable  bool    `json:"course_unattainable"`
}

type FuelRequest struct {
	Distance             float64  `json:"distance"`
	GroundSpeed          float64  `json:"ground_speed"`
	FuelFlow             float64  `json:"fuel_flow"`
	ReserveMinutes       *float64 `json:"reserve_minutes"`
	AlternateDistance    *float64 `json:"alternate_distance"`
	AlternateGroundSpeed *float64 `json:"alternate_ground_speed"`
}

type FuelResponse struct {
	FlightTime    float64 `json:"flight_time"`
	FuelUsed      float64 `json:"fuel_used"`
	ReserveFuel   float64 `json:"reserve_fuel"`
	AlternateFuel float64 `json:"alternate_fuel"`
	TotalFuel     float64 `json:"total_fuel"`
}
