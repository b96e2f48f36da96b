// Package geo measures great-circle distances between coordinates.
package geo

import (
	"math"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// EarthRadiusKm is the mean radius of the Earth in kilometres.
const EarthRadiusKm = 6371.0

// ToRadians converts decimal degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance between two points in kilometres
// using the Haversine formula. Inputs must be finite coordinates.
func Distance(from, to models.Coordinates) float64 {
	dLat := ToRadians(to.Latitude - from.Latitude)
	dLon := ToRadians(to.Longitude - from.Longitude)
	lat1 := ToRadians(from.Latitude)
	lat2 := ToRadians(to.Latitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Within reports whether the two points are at most radiusKm apart.
func Within(from, to models.Coordinates, radiusKm float64) bool {
	return Distance(from, to) <= radiusKm
}
