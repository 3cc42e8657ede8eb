package flightmath

import (
	"flight-planning-service/internal/domain"
	"fmt"
	"math"
)

// GreatCircleDistance returns the great-circle distance in nautical miles
// between two points, using the haversine formula.
//
// Coincident points return exactly 0; distinct points, however close, return
// a positive distance. Antipodal points return half the circumference of the
// spherical model (about 10,807 NM).
func GreatCircleDistance(a, b domain.GeoPoint) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, fmt.Errorf("great circle distance: %w", err)
	}

	if a == b {
		return 0, nil
	}

	lat1, lat2 := DegreesToRadians(a.Lat), DegreesToRadians(b.Lat)
	dlat := lat2 - lat1
	dlon := DegreesToRadians(b.Lon - a.Lon)

	sdlat, sdlon := math.Sin(dlat/2), math.Sin(dlon/2)
	h := sdlat*sdlat + math.Cos(lat1)*math.Cos(lat2)*sdlon*sdlon

	// Rounding can push h just above 1 for antipodal points, where asin
	// would return NaN.
	h = Clamp(h, 0, 1)

	return 2 * EarthRadiusNM * math.Asin(math.Sqrt(h)), nil
}

// Bearing returns the initial great-circle bearing (forward azimuth) from
// one point to another in degrees true, in [0, 360).
//
// The bearing between coincident points is undefined; 0 is returned.
func Bearing(from, to domain.GeoPoint) (float64, error) {
	if err := validatePair(from, to); err != nil {
		return 0, fmt.Errorf("bearing: %w", err)
	}

	if from == to {
		return 0, nil
	}

	lat1, lat2 := DegreesToRadians(from.Lat), DegreesToRadians(to.Lat)
	dlon := DegreesToRadians(to.Lon - from.Lon)

	y := math.Sin(dlon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)

	return NormalizeHeading(RadiansToDegrees(math.Atan2(y, x))), nil
}

// DistanceAndBearing computes both values with a single validation pass.
func DistanceAndBearing(from, to domain.GeoPoint) (distance, bearing float64, err error) {
	if distance, err = GreatCircleDistance(from, to); err != nil {
		return 0, 0, err
	}
	if bearing, err = Bearing(from, to); err != nil {
		return 0, 0, err
	}
	return distance, bearing, nil
}

func validatePair(a, b domain.GeoPoint) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return b.Validate()
}
