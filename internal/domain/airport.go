package domain

import "strings"

// Represents a named airport that legs can be planned between.
// Ident is the ICAO/FAA location identifier and is unique.
type Airport struct {
	Ident    string
	Name     string
	Location GeoPoint
}

// NormalizeIdent upper-cases and trims an airport identifier so lookups
// are insensitive to how the caller typed it.
func NormalizeIdent(ident string) string {
	return strings.ToUpper(strings.TrimSpace(ident))
}
