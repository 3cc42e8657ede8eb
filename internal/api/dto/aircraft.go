package dto

type AircraftResponse struct {
	AircraftID      string  `json:"aircraft_id"`
	Name            string  `json:"name"`
	CruiseSpeedKt   float64 `json:"cruise_speed_kt"`
	FuelFlowGph     float64 `json:"fuel_flow_gph"`
	FuelCapacityGal float64 `json:"fuel_capacity_gal"`
	EnduranceHours  float64 `json:"endurance_hours"`
}

type ListAircraftResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
}

type AirportDistanceResponse struct {
	Ident      string  `json:"ident"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceNM float64 `json:"distance_nm"`
	BearingDeg float64 `json:"bearing_deg"`
}

type NearestAirportsResponse struct {
	Airports []AirportDistanceResponse `json:"airports"`
}
