package handlers

import (
	"flight-planning-service/internal/api/dto"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/ports"
	"flight-planning-service/internal/services"
	"math"
	"net/http"
	"strconv"
)

const (
	defaultNearestLimit = 5
	maxNearestLimit     = 50
)

// AirportHandler answers proximity queries over the airport catalog.
type AirportHandler struct {
	Catalog ports.AirportCatalog
}

// Nearest handles GET /airports/nearest?lat=..&lon=..[&limit=..][&max_nm=..].
func (h *AirportHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lon must be a number")
		return
	}

	limit := defaultNearestLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxNearestLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 50")
			return
		}
		limit = n
	}

	var maxNM float64
	if s := q.Get("max_nm"); s != "" {
		maxNM, err = strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(maxNM) || math.IsInf(maxNM, 0) || maxNM < 0 {
			writeError(w, r, http.StatusBadRequest, "max_nm must be a finite non-negative number")
			return
		}
	}

	found, err := services.NearestAirports(r.Context(), domain.GeoPoint{Lat: lat, Lon: lon}, limit, maxNM, h.Catalog)
	if err != nil {
		writeServiceError(w, r, "nearest airports", err)
		return
	}

	res := dto.NearestAirportsResponse{
		Airports: make([]dto.AirportDistanceResponse, 0, len(found)),
	}
	for _, a := range found {
		res.Airports = append(res.Airports, dto.AirportDistanceResponse{
			Ident:      a.Airport.Ident,
			Name:       a.Airport.Name,
			Lat:        a.Airport.Location.Lat,
			Lon:        a.Airport.Location.Lon,
			DistanceNM: a.DistanceNM,
			BearingDeg: a.Bearing,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
