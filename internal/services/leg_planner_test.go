package services

import (
	"context"
	"errors"
	"flight-planning-service/internal/adapters/repositories"
	"flight-planning-service/internal/domain"
	"flight-planning-service/internal/flightmath"
	"math"
	"testing"
)

var (
	kjfk = domain.Airport{Ident: "KJFK", Name: "Kennedy", Location: domain.GeoPoint{Lat: 40.6413, Lon: -73.7781}}
	kbos = domain.Airport{Ident: "KBOS", Name: "Logan", Location: domain.GeoPoint{Lat: 42.3656, Lon: -71.0096}}
	kpvd = domain.Airport{Ident: "KPVD", Name: "T F Green", Location: domain.GeoPoint{Lat: 41.7240, Lon: -71.4283}}
	kbdl = domain.Airport{Ident: "KBDL", Name: "Bradley", Location: domain.GeoPoint{Lat: 41.9389, Lon: -72.6832}}
	klax = domain.Airport{Ident: "KLAX", Name: "Los Angeles", Location: domain.GeoPoint{Lat: 33.9425, Lon: -118.4081}}

	c172 = domain.AircraftPerformance{ID: "C172", Name: "Skyhawk", CruiseSpeed: 122, FuelFlow: 8.5, FuelCapacity: 53}
)

func newTestRepo() *repositories.MemoryRepository {
	return repositories.NewMemoryRepository(
		[]domain.Airport{kjfk, kbos, kpvd, kbdl, klax},
		[]domain.AircraftPerformance{c172},
	)
}

func ptr(v float64) *float64 { return &v }

type mapLegCache struct {
	m    map[string]*domain.LegPlan
	gets int
	puts int
	err  error
}

func (c *mapLegCache) GetLeg(ctx context.Context, key string) (*domain.LegPlan, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	p, ok := c.m[key]
	return p, ok, nil
}

func (c *mapLegCache) PutLeg(ctx context.Context, key string, plan *domain.LegPlan) error {
	c.puts++
	if c.err != nil {
		return c.err
	}
	c.m[key] = plan
	return nil
}

func TestPlanLegCalmWind(t *testing.T) {
	repo := newTestRepo()

	plan, err := PlanLeg(context.Background(), LegRequest{From: "kjfk", To: "KBOS", AircraftID: "c172"}, repo, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDist, _ := flightmath.GreatCircleDistance(kjfk.Location, kbos.Location)
	if math.Abs(plan.DistanceNM-wantDist) > 1e-9 {
		t.Fatalf("distance = %v, want %v", plan.DistanceNM, wantDist)
	}
	if plan.Course < 40 || plan.Course > 70 {
		t.Fatalf("course = %v, want northeast", plan.Course)
	}
	if plan.WindTriangle.GroundSpeed != c172.CruiseSpeed {
		t.Fatalf("ground speed = %v, want %v in calm wind", plan.WindTriangle.GroundSpeed, c172.CruiseSpeed)
	}
	if want := wantDist / c172.CruiseSpeed; math.Abs(plan.Fuel.FlightTime-want) > 1e-9 {
		t.Fatalf("flight time = %v, want %v", plan.Fuel.FlightTime, want)
	}
	if plan.Fuel.ReserveFuel != 0 || plan.Fuel.AlternateFuel != 0 {
		t.Fatalf("unexpected reserve/alternate fuel: %+v", plan.Fuel)
	}
	if !plan.WithinCapacity {
		t.Fatalf("WithinCapacity = false, want true for a short leg")
	}
	if math.Abs(plan.FuelMargin-(c172.FuelCapacity-plan.Fuel.TotalFuel)) > 1e-9 {
		t.Fatalf("fuel margin = %v, want %v", plan.FuelMargin, c172.FuelCapacity-plan.Fuel.TotalFuel)
	}
}

func TestPlanLegHeadwindSlowsGroundSpeed(t *testing.T) {
	repo := newTestRepo()

	calm, err := PlanLeg(context.Background(), LegRequest{From: "KJFK", To: "KBOS", AircraftID: "C172"}, repo, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	windy, err := PlanLeg(context.Background(), LegRequest{
		From:       "KJFK",
		To:         "KBOS",
		AircraftID: "C172",
		Wind:       domain.Wind{Direction: calm.Course, Speed: 25},
	}, repo, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(windy.WindTriangle.GroundSpeed-(c172.CruiseSpeed-25)) > 1e-6 {
		t.Fatalf("ground speed = %v, want %v", windy.WindTriangle.GroundSpeed, c172.CruiseSpeed-25)
	}
	if windy.Fuel.FuelUsed <= calm.Fuel.FuelUsed {
		t.Fatalf("headwind fuel = %v, want more than calm %v", windy.Fuel.FuelUsed, calm.Fuel.FuelUsed)
	}
}

func TestPlanLegReserveAndAlternate(t *testing.T) {
	repo := newTestRepo()

	plan, err := PlanLeg(context.Background(), LegRequest{
		From:           "KJFK",
		To:             "KBOS",
		Alternate:      "KPVD",
		AircraftID:     "C172",
		ReserveMinutes: ptr(45),
	}, repo, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Alternate != "KPVD" {
		t.Fatalf("alternate = %q, want KPVD", plan.Alternate)
	}
	if want := 45.0 / 60 * c172.FuelFlow; math.Abs(plan.Fuel.ReserveFuel-want) > 1e-9 {
		t.Fatalf("reserve = %v, want %v", plan.Fuel.ReserveFuel, want)
	}

	altDist, _ := flightmath.GreatCircleDistance(kbos.Location, kpvd.Location)
	if want := altDist / c172.CruiseSpeed * c172.FuelFlow; math.Abs(plan.Fuel.AlternateFuel-want) > 1e-9 {
		t.Fatalf("alternate fuel = %v, want %v", plan.Fuel.AlternateFuel, want)
	}
	if want := plan.Fuel.FuelUsed + plan.Fuel.ReserveFuel + plan.Fuel.AlternateFuel; math.Abs(plan.Fuel.TotalFuel-want) > 1e-9 {
		t.Fatalf("total = %v, want %v", plan.Fuel.TotalFuel, want)
	}
}

func TestPlanLegExceedsCapacity(t *testing.T) {
	repo := newTestRepo()

	plan, err := PlanLeg(context.Background(), LegRequest{From: "KJFK", To: "KLAX", AircraftID: "C172"}, repo, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.WithinCapacity {
		t.Fatalf("WithinCapacity = true, want false for a transcontinental C172 leg")
	}
	if plan.FuelMargin >= 0 {
		t.Fatalf("fuel margin = %v, want negative", plan.FuelMargin)
	}
}

func TestPlanLegErrors(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name string
		req  LegRequest
		want error
	}{
		{"unknown airport", LegRequest{From: "KJFK", To: "ZZZZ", AircraftID: "C172"}, domain.ErrAirportNotFound},
		{"unknown alternate", LegRequest{From: "KJFK", To: "KBOS", Alternate: "ZZZZ", AircraftID: "C172"}, domain.ErrAirportNotFound},
		{"unknown aircraft", LegRequest{From: "KJFK", To: "KBOS", AircraftID: "B738"}, domain.ErrAircraftNotFound},
		{"same airport", LegRequest{From: "KJFK", To: "KJFK", AircraftID: "C172"}, domain.ErrInvalidInput},
		{"missing from", LegRequest{To: "KJFK", AircraftID: "C172"}, domain.ErrInvalidInput},
		{"negative wind", LegRequest{From: "KJFK", To: "KBOS", AircraftID: "C172", Wind: domain.Wind{Speed: -1}}, domain.ErrInvalidInput},
		// A direct headwind stronger than the aircraft's airspeed leaves no ground speed.
		{"headwind above cruise", LegRequest{From: "KJFK", To: "KLAX", AircraftID: "C172", Wind: domain.Wind{Direction: 270, Speed: 300}}, domain.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PlanLeg(context.Background(), tc.req, repo, repo, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if !IsClientError(err) {
				t.Fatalf("IsClientError(%v) = false, want true", err)
			}
		})
	}
}

func TestPlanLegUsesCache(t *testing.T) {
	repo := newTestRepo()
	cache := &mapLegCache{m: map[string]*domain.LegPlan{}}
	req := LegRequest{From: "KJFK", To: "KBOS", AircraftID: "C172", Wind: domain.Wind{Direction: 270, Speed: 15}}

	first, err := PlanLeg(context.Background(), req, repo, repo, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}

	second, err := PlanLeg(context.Background(), req, repo, repo, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Fatalf("second plan was not served from cache")
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1 after a hit", cache.puts)
	}
}

func TestPlanLegIgnoresCacheErrors(t *testing.T) {
	repo := newTestRepo()
	cache := &mapLegCache{m: map[string]*domain.LegPlan{}, err: errors.New("redis down")}

	if _, err := PlanLeg(context.Background(), LegRequest{From: "KJFK", To: "KBOS", AircraftID: "C172"}, repo, repo, cache); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.gets != 1 || cache.puts != 1 {
		t.Fatalf("gets = %d, puts = %d, want 1 and 1", cache.gets, cache.puts)
	}
}

func TestLegCacheKey(t *testing.T) {
	a := LegCacheKey(LegRequest{Wind: domain.Wind{Direction: -90, Speed: 10}}, c172, kjfk, kbos, nil)
	b := LegCacheKey(LegRequest{Wind: domain.Wind{Direction: 270, Speed: 10}}, c172, kjfk, kbos, nil)
	if a != b {
		t.Fatalf("keys differ for equivalent requests: %q vs %q", a, b)
	}

	c := LegCacheKey(LegRequest{Wind: domain.Wind{Direction: 270, Speed: 10}, ReserveMinutes: ptr(30)}, c172, kjfk, kbos, nil)
	if c == b {
		t.Fatalf("reserve minutes must change the key")
	}

	if LegCacheKey(LegRequest{}, c172, kjfk, kbos, &kpvd) == LegCacheKey(LegRequest{}, c172, kjfk, kbos, nil) {
		t.Fatalf("an alternate must change the key")
	}

	moved := kbos
	moved.Location.Lat += 0.01
	if LegCacheKey(LegRequest{}, c172, kjfk, moved, nil) == LegCacheKey(LegRequest{}, c172, kjfk, kbos, nil) {
		t.Fatalf("airport coordinates must change the key")
	}

	thirsty := c172
	thirsty.FuelFlow = 10
	if LegCacheKey(LegRequest{}, thirsty, kjfk, kbos, nil) == LegCacheKey(LegRequest{}, c172, kjfk, kbos, nil) {
		t.Fatalf("aircraft performance must change the key")
	}
}

func TestPlanLegCacheMissesAfterReseed(t *testing.T) {
	cache := &mapLegCache{m: map[string]*domain.LegPlan{}}
	req := LegRequest{From: "KJFK", To: "KBOS", AircraftID: "C172"}

	before, err := PlanLeg(context.Background(), req, newTestRepo(), newTestRepo(), cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same idents, new performance figures, as after a reseed.
	reseeded := c172
	reseeded.FuelFlow = 10
	repo := repositories.NewMemoryRepository(
		[]domain.Airport{kjfk, kbos},
		[]domain.AircraftPerformance{reseeded},
	)

	after, err := PlanLeg(context.Background(), req, repo, repo, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after == before {
		t.Fatalf("plan was served from cache despite changed aircraft data")
	}
	if want := after.Fuel.FlightTime * 10; math.Abs(after.Fuel.FuelUsed-want) > 1e-9 {
		t.Fatalf("fuel used = %v, want %v at the reseeded fuel flow", after.Fuel.FuelUsed, want)
	}
	if cache.puts != 2 {
		t.Fatalf("cache puts = %d, want 2", cache.puts)
	}
}
