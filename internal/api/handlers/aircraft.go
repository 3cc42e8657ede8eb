package handlers

import (
	"flight-planning-service/internal/api/dto"
	"flight-planning-service/internal/flightmath"
	"flight-planning-service/internal/ports"
	"net/http"
)

// AircraftHandler exposes read-only aircraft performance endpoints.
type AircraftHandler struct {
	Repo ports.AircraftRepository
}

func (h *AircraftHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	list, err := h.Repo.ListAircraft(r.Context())
	if err != nil {
		writeServiceError(w, r, "list aircraft", err)
		return
	}

	res := dto.ListAircraftResponse{
		Aircraft: make([]dto.AircraftResponse, 0, len(list)),
	}
	for _, a := range list {
		// Profiles are validated on load, so fuel flow is positive here.
		endurance, _ := flightmath.Endurance(a.FuelCapacity, a.FuelFlow)
		res.Aircraft = append(res.Aircraft, dto.AircraftResponse{
			AircraftID:      a.ID,
			Name:            a.Name,
			CruiseSpeedKt:   a.CruiseSpeed,
			FuelFlowGph:     a.FuelFlow,
			FuelCapacityGal: a.FuelCapacity,
			EnduranceHours:  endurance,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
