package services

import (
	"context"
	"errors"
	"flight-planning-service/internal/domain"
	"math"
	"testing"
)

func TestNearestAirports(t *testing.T) {
	repo := newTestRepo()

	// Midway between JFK and Bradley.
	origin := domain.GeoPoint{Lat: 41.3, Lon: -73.2}

	got, err := NearestAirports(context.Background(), origin, 3, 0, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 airports, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].DistanceNM < got[i-1].DistanceNM {
			t.Fatalf("results not sorted by distance: %v before %v", got[i-1].DistanceNM, got[i].DistanceNM)
		}
	}
	for _, r := range got {
		if r.Airport.Ident == "KLAX" {
			t.Fatalf("KLAX should not be among the nearest airports")
		}
	}
}

func TestNearestAirportsMaxDistance(t *testing.T) {
	repo := newTestRepo()

	got, err := NearestAirports(context.Background(), kbos.Location, 10, 50, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Logan itself and T F Green are within 50 NM of Logan.
	if len(got) != 2 {
		t.Fatalf("expected 2 airports within 50 NM, got %d", len(got))
	}
	if got[0].Airport.Ident != "KBOS" || got[0].DistanceNM != 0 {
		t.Fatalf("first = %s at %v NM, want KBOS at 0", got[0].Airport.Ident, got[0].DistanceNM)
	}
	if got[1].Airport.Ident != "KPVD" {
		t.Fatalf("second = %s, want KPVD", got[1].Airport.Ident)
	}
}

func TestNearestAirportsInvalid(t *testing.T) {
	repo := newTestRepo()

	if _, err := NearestAirports(context.Background(), domain.GeoPoint{Lat: 95}, 3, 0, repo); !errors.Is(err, domain.ErrInvalidCoordinate) {
		t.Fatalf("err = %v, want ErrInvalidCoordinate", err)
	}
	if _, err := NearestAirports(context.Background(), kbos.Location, 0, 0, repo); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	for _, maxNM := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NearestAirports(context.Background(), kbos.Location, 3, maxNM, repo); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("max distance %v: err = %v, want ErrInvalidInput", maxNM, err)
		}
	}
}
