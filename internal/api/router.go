package api

import (
	"flight-planning-service/internal/api/handlers"
	"flight-planning-service/internal/platform/metrics"
	"flight-planning-service/internal/ports"
	"net/http"
)

// Deps are the adapters the HTTP layer is built from.
type Deps struct {
	Airports ports.AirportCatalog
	Aircraft ports.AircraftRepository
	// Optional.
	LegCache ports.LegCache
	// Optional; nil disables /metrics and request metrics.
	Metrics *metrics.Collector
	// Optional; nil disables rate limiting.
	Limiter *IPRateLimiter
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	calcHandler := &handlers.CalcHandler{}
	aircraftHandler := &handlers.AircraftHandler{Repo: d.Aircraft}
	airportHandler := &handlers.AirportHandler{Catalog: d.Airports}
	planHandler := &handlers.PlanHandler{
		Airports: d.Airports,
		Aircraft: d.Aircraft,
		Cache:    d.LegCache,
	}

	routes := map[string]http.HandlerFunc{
		"/health":           handlers.Health,
		"/distance":         calcHandler.Distance,
		"/wind-triangle":    calcHandler.WindTriangle,
		"/fuel":             calcHandler.Fuel,
		"/aircraft":         aircraftHandler.List,
		"/airports/nearest": airportHandler.Nearest,
		"/legs":             planHandler.Leg,
		"/routes":           planHandler.Route,
	}
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}

	known := make(map[string]struct{}, len(routes)+1)
	for pattern := range routes {
		known[pattern] = struct{}{}
	}
	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
		known["/metrics"] = struct{}{}
	}
	label := routeLabeler(known)

	var h http.Handler = mux
	h = rateLimitMiddleware(d.Limiter, d.Metrics, label, h)
	h = loggingMiddleware(d.Metrics, label, h)
	return requestIDMiddleware(h)
}

// Metric label for requests that match no registered route.
const unmatchedRoute = "other"

// routeLabeler maps a request path to a bounded metric label: the route
// itself when registered, unmatchedRoute otherwise.
func routeLabeler(known map[string]struct{}) func(path string) string {
	return func(path string) string {
		if _, ok := known[path]; ok {
			return path
		}
		return unmatchedRoute
	}
}
