// Package flightmath implements the single-leg flight-planning calculations:
// great-circle geodesy on a spherical earth, the wind triangle, and fuel planning.
//
// Units are fixed throughout: decimal degrees for positions and angles,
// nautical miles for distance, knots for speed, hours for time and gallons
// for fuel. Every function is pure and safe for concurrent use.
package flightmath

import "math"

const (
	// Mean earth radius (6371 km) in nautical miles; one degree of arc is
	// within 0.05 NM of the 60 NM definition.
	EarthRadiusNM = 3440.065

	StatuteMilesPerNM = 1.150779448
	KilometersPerNM   = 1.852
)

func DegreesToRadians(d float64) float64 { return d * math.Pi / 180 }

func RadiansToDegrees(r float64) float64 { return r * 180 / math.Pi }

func Clamp(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// NormalizeHeading reduces an angle in degrees to [0, 360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative value plus 360 rounds back up to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// HeadingDifference returns the minimum difference between two
// headings; the result is always in the range [0,180].
func HeadingDifference(a, b float64) float64 {
	d := math.Abs(NormalizeHeading(a) - NormalizeHeading(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func NMToStatuteMiles(nm float64) float64 { return nm * StatuteMilesPerNM }

func NMToKilometers(nm float64) float64 { return nm * KilometersPerNM }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
