package models

import "math"

// Coordinates represents a geographical point defined by its latitude and longitude in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`  // Latitude of the geographical point.
	Longitude float64 `json:"longitude"` // Longitude of the geographical point.
}

// Valid reports whether both values are finite and inside the geographic range.
func (c Coordinates) Valid() bool {
	const maxLat, maxLon = 90, 180

	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -maxLat && c.Latitude <= maxLat &&
		c.Longitude >= -maxLon && c.Longitude <= maxLon
}
