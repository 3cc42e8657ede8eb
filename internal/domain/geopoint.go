package domain

import (
	"fmt"
	"math"
)

// Immutable geographic position in decimal degrees.
// Longitude is circular and any real value is accepted; latitude must lie in [-90, 90].
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Validate reports ErrInvalidCoordinate when the latitude is outside [-90, 90]
// or either component is not a finite number.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.Abs(p.Lat) > 90 {
		return fmt.Errorf("%w: Invalid latitude %v", ErrInvalidCoordinate, p.Lat)
	}
	if math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return fmt.Errorf("%w: Invalid longitude %v", ErrInvalidCoordinate, p.Lon)
	}
	return nil
}

func (p GeoPoint) String() string { return fmt.Sprintf("(%.4f, %.4f)", p.Lat, p.Lon) }
