package handlers

import (
	"flight-planning-service/internal/api/dto"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/ports"
	"flight-planning-service/internal/services"
	"net/http"
)

// Reserve applied when a request leaves reserve_minutes out. An explicit 0 disables it.
const defaultReserveMinutes = 45.0

// PlanHandler plans legs and fixed routes against the configured repositories.
type PlanHandler struct {
	Airports ports.AirportRepository
	Aircraft ports.AircraftRepository
	// Optional.
	Cache ports.LegCache
}

func (h *PlanHandler) Leg(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.LegRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, err := services.PlanLeg(r.Context(), services.LegRequest{
		From:           req.From,
		To:             req.To,
		Alternate:      req.Alternate,
		AircraftID:     req.AircraftID,
		Wind:           domain.Wind{Direction: req.WindDirection, Speed: req.WindSpeed},
		ReserveMinutes: reserveOrDefault(req.ReserveMinutes),
	}, h.Airports, h.Aircraft, h.Cache)
	if err != nil {
		writeServiceError(w, r, "plan leg", err)
		return
	}

	writeJSON(w, r, http.StatusOK, legResponse(*plan))
}

func (h *PlanHandler) Route(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	plan, err := services.PlanRoute(r.Context(), services.RouteRequest{
		Waypoints:      req.Waypoints,
		AircraftID:     req.AircraftID,
		Wind:           domain.Wind{Direction: req.WindDirection, Speed: req.WindSpeed},
		Alternate:      req.Alternate,
		ReserveMinutes: reserveOrDefault(req.ReserveMinutes),
	}, h.Airports, h.Aircraft)
	if err != nil {
		writeServiceError(w, r, "plan route", err)
		return
	}

	res := dto.RouteResponse{
		AircraftID:      plan.AircraftID,
		Legs:            make([]dto.LegResponse, 0, len(plan.Legs)),
		TotalDistanceNM: plan.TotalDistanceNM,
		TotalFlightTime: plan.TotalFlightTime,
		TotalFuel:       plan.TotalFuel,
		FuelMargin:      plan.FuelMargin,
		WithinCapacity:  plan.WithinCapacity,
	}
	for _, leg := range plan.Legs {
		res.Legs = append(res.Legs, legResponse(leg))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func reserveOrDefault(v *float64) *float64 {
	if v != nil {
		return v
	}
	d := defaultReserveMinutes
	return &d
}

func legResponse(p domain.LegPlan) dto.LegResponse {
	return dto.LegResponse{
		From:           p.From,
		To:             p.To,
		Alternate:      p.Alternate,
		AircraftID:     p.AircraftID,
		DistanceNM:     p.DistanceNM,
		CourseDeg:      p.Course,
		WindDirection:  p.Wind.Direction,
		WindSpeed:      p.Wind.Speed,
		WindTriangle:   windTriangleResponse(p.WindTriangle),
		Fuel:           fuelResponse(p.Fuel),
		FuelMargin:     p.FuelMargin,
		WithinCapacity: p.WithinCapacity,
	}
}
