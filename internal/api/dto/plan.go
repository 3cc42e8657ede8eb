package dto

type LegRequest struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	Alternate      string   `json:"alternate"`
	AircraftID     string   `json:"aircraft_id"`
	WindDirection  float64  `json:"wind_direction"`
	WindSpeed      float64  `json:"wind_speed"`
	ReserveMinutes *float64 `json:"reserve_minutes"`
}

type RouteRequest struct {
	Waypoints      []string `json:"waypoints"`
	Alternate      string   `json:"alternate"`
	AircraftID     string   `json:"aircraft_id"`
	WindDirection  float64  `json:"wind_direction"`
	WindSpeed      float64  `json:"wind_speed"`
	ReserveMinutes *float64 `json:"reserve_minutes"`
}

type LegResponse struct {
	From           string               `json:"from"`
	To             string               `json:"to"`
	Alternate      string               `json:"alternate,omitempty"`
	AircraftID     string               `json:"aircraft_id"`
	DistanceNM     float64              `json:"distance_nm"`
	CourseDeg      float64              `json:"course_deg"`
	WindDirection  float64              `json:"wind_direction"`
	WindSpeed      float64              `json:"wind_speed"`
	WindTriangle   WindTriangleResponse `json:"wind_triangle"`
	Fuel           FuelResponse         `json:"fuel"`
	FuelMargin     float64              `json:"fuel_margin"`
	WithinCapacity bool                 `json:"within_capacity"`
}

type RouteResponse struct {
	AircraftID      string        `json:"aircraft_id"`
	Legs            []LegResponse `json:"legs"`
	TotalDistanceNM float64       `json:"total_distance_nm"`
	TotalFlightTime float64       `json:"total_flight_time"`
	TotalFuel       float64       `json:"total_fuel"`
	FuelMargin      float64       `json:"fuel_margin"`
	WithinCapacity  bool          `json:"within_capacity"`
}
