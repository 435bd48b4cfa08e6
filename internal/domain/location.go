package domain

import (
	"regexp"
	"strings"
	"time"
)

// LocationType classifies reference locations
type LocationType string

const (
	LocationCity      LocationType = "city"
	LocationAirport   LocationType = "airport"
	LocationThemePark LocationType = "theme_park"
	LocationOther     LocationType = "other"
)

// IsValid returns true for known location types
func (t LocationType) IsValid() bool {
	switch t {
	case LocationCity, LocationAirport, LocationThemePark, LocationOther:
		return true
	}
	return false
}

// Location is immutable reference data referenced by id from reservations and pricing rows
type Location struct {
	ID        string
	Name      string
	Type      LocationType
	CreatedAt time.Time
}

// VehicleType is reference data describing a vehicle class
type VehicleType struct {
	ID            string
	Name          string
	Description   string
	MinPassengers int
	MaxPassengers int // 0 = no upper bound
	CreatedAt     time.Time
}

// Fits returns true if the vehicle can carry the given number of passengers
func (v *VehicleType) Fits(passengers int) bool {
	if passengers < v.MinPassengers {
		return false
	}
	return v.MaxPassengers == 0 || passengers <= v.MaxPassengers
}

var locationIdentifierRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

// IsLocationIdentifier reports whether a stored pickup/destination value looks like an opaque location id
// rather than a free-form address
func IsLocationIdentifier(s string) bool {
	return len(s) < MaxLocationIdentifierLength && locationIdentifierRe.MatchString(s)
}

// ResolveLocationName returns the human-readable name for a stored location value.
// Values matching a location id are replaced by its name; anything unmatched is returned as is.
func ResolveLocationName(value string, locations []Location) string {
	if value == "" {
		return value
	}
	for _, l := range locations {
		if l.ID == value {
			return l.Name
		}
	}
	return value
}

// SameLocation reports whether two pickup/destination values point to the same place
// after trimming and lowercasing. Empty values never match.
func SameLocation(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	return na != "" && na == strings.ToLower(strings.TrimSpace(b))
}
