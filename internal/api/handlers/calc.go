package handlers

import (
	"flight-planning-service/internal/api/dto"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/flightmath"
	"net/http"
)

// CalcHandler exposes the stateless flight-planning calculations.
type CalcHandler struct{}

func (h *CalcHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DistanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	from, ok := toGeoPoint(req.From)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "from.lat and from.lon are required")
		return
	}
	to, ok := toGeoPoint(req.To)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "to.lat and to.lon are required")
		return
	}

	d, b, err := flightmath.DistanceAndBearing(from, to)
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		DistanceNM:           d,
		DistanceStatuteMiles: flightmath.NMToStatuteMiles(d),
		DistanceKm:           flightmath.NMToKilometers(d),
		BearingDeg:           b,
	})
}

func (h *CalcHandler) WindTriangle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.WindTriangleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := flightmath.WindTriangle(req.TrueAirspeed, req.WindSpeed, req.WindDirection, req.Course)
	if err != nil {
		writeServiceError(w, r, "wind triangle", err)
		return
	}

	writeJSON(w, r, http.StatusOK, windTriangleResponse(res))
}

func (h *CalcHandler) Fuel(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.FuelRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := flightmath.FuelConsumption(req.Distance, req.GroundSpeed, req.FuelFlow, domain.FuelPlanOptions{
		ReserveMinutes:       req.ReserveMinutes,
		AlternateDistance:    req.AlternateDistance,
		AlternateGroundSpeed: req.AlternateGroundSpeed,
	})
	if err != nil {
		writeServiceError(w, r, "fuel", err)
		return
	}

	writeJSON(w, r, http.StatusOK, fuelResponse(res))
}

func toGeoPoint(p dto.GeoPointRequest) (domain.GeoPoint, bool) {
	if p.Lat == nil || p.Lon == nil {
		return domain.GeoPoint{}, false
	}
	return domain.GeoPoint{Lat: *p.Lat, Lon: *p.Lon}, true
}

func windTriangleResponse(r domain.WindTriangleResult) dto.WindTriangleResponse {
	return dto.WindTriangleResponse{
		GroundSpeed:         r.GroundSpeed,
		WindCorrectionAngle: r.WindCorrectionAngle,
		Heading:             r.Heading,
		CourseUnattainable:  r.CourseUnattainable,
	}
}

func fuelResponse(r domain.FuelPlanResult) dto.FuelResponse {
	return dto.FuelResponse{
		FlightTime:    r.FlightTime,
		FuelUsed:      r.FuelUsed,
		ReserveFuel:   r.ReserveFuel,
		AlternateFuel: r.AlternateFuel,
		TotalFuel:     r.TotalFuel,
	}
}
