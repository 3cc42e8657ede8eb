package api

import (
	"flight-planning-service/internal/adapters/repositories"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/platform/metrics"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/time/rate"
)

func newTestRouter(limiter *IPRateLimiter) (http.Handler, *metrics.Collector) {
	repo := repositories.NewMemoryRepository(
		[]domain.Airport{
			{Ident: "KJFK", Name: "Kennedy", Location: domain.GeoPoint{Lat: 40.6413, Lon: -73.7781}},
			{Ident: "KBOS", Name: "Logan", Location: domain.GeoPoint{Lat: 42.3656, Lon: -71.0096}},
		},
		[]domain.AircraftPerformance{
			{ID: "C172", Name: "Skyhawk", CruiseSpeed: 122, FuelFlow: 8.5, FuelCapacity: 53},
		},
	)
	m := metrics.NewCollector()
	return NewRouter(Deps{Airports: repo, Aircraft: repo, Metrics: m, Limiter: limiter}), m
}

func TestRouterRoutes(t *testing.T) {
	h, _ := newTestRouter(nil)

	tests := []struct {
		method string
		target string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/aircraft", "", http.StatusOK},
		{http.MethodGet, "/airports/nearest?lat=41&lon=-72", "", http.StatusOK},
		{http.MethodPost, "/distance", `{"from":{"lat":0,"lon":0},"to":{"lat":0,"lon":1}}`, http.StatusOK},
		{http.MethodPost, "/wind-triangle", `{"true_airspeed":100,"wind_speed":0,"wind_direction":0,"course":90}`, http.StatusOK},
		{http.MethodPost, "/fuel", `{"distance":10,"ground_speed":100,"fuel_flow":8}`, http.StatusOK},
		{http.MethodPost, "/legs", `{"from":"KJFK","to":"KBOS","aircraft_id":"C172"}`, http.StatusOK},
		{http.MethodPost, "/routes", `{"waypoints":["KJFK","KBOS"],"aircraft_id":"C172"}`, http.StatusOK},
		{http.MethodGet, "/legs", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nowhere", "", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Fatalf("missing X-Request-ID header")
			}
		})
	}
}

func TestRouterPropagatesRequestID(t *testing.T) {
	h, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc123" {
		t.Fatalf("X-Request-ID = %q, want abc123", got)
	}
}

func TestRouterMetrics(t *testing.T) {
	h, _ := newTestRouter(nil)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `flightplan_requests_total{method="GET",path="/health",status="200"} 1`) {
		t.Fatalf("request counter missing from metrics output:\n%s", rec.Body.String())
	}
}

func TestRouterRateLimit(t *testing.T) {
	h, _ := newTestRouter(NewIPRateLimiter(rate.Limit(0.001), 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "192.0.2.10:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v, want [200 200 429]", codes)
	}

	// Other clients have their own bucket.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.11:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d for a second client, want 200", rec.Code)
	}
}

func TestIPRateLimiterReusesBuckets(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1)
	if l.GetLimiter("a") != l.GetLimiter("a") {
		t.Fatalf("expected the same limiter for the same ip")
	}
	if l.GetLimiter("a") == l.GetLimiter("b") {
		t.Fatalf("expected distinct limiters for distinct ips")
	}
}

func TestRouterMetricsCollapseUnknownPaths(t *testing.T) {
	h, _ := newTestRouter(nil)

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/scan/"+strconv.Itoa(i), nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	if !strings.Contains(body, `flightplan_requests_total{method="GET",path="other",status="404"} 50`) {
		t.Fatalf("unknown paths were not collapsed into one series:\n%s", body)
	}
	if strings.Contains(body, "/scan/") {
		t.Fatalf("raw request paths leaked into metric labels")
	}
}

func TestRouterRateLimitedUnknownPathUsesFixedLabel(t *testing.T) {
	h, _ := newTestRouter(NewIPRateLimiter(rate.Limit(0.001), 1))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/random-"+strconv.Itoa(i), nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	// The limiter has no budget left for this client, so read metrics from another one.
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.RemoteAddr = "198.51.100.7:4000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	body := rec.Body.String()

	if !strings.Contains(body, `flightplan_rate_limited_total{path="other"} 2`) {
		t.Fatalf("rate-limited unknown paths not collapsed:\n%s", body)
	}
}
