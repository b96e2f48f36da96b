package geocoding

import (
	"context"
	"log/slog"
	"unicode/utf16"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// Base point of the mock provider (Los Angeles).
const (
	MockBaseLatitude  = 34.0522
	MockBaseLongitude = -118.2437
)

const (
	offsetModulus = 1000
	offsetScale   = 20000.0
	lonHashShift  = 16
)

// MockProvider stands in for a hosted geocoding service. It derives coordinates
// from a hash of the address line, so the same address always lands on the same
// point within roughly 0.05 degrees of the base point. No network I/O happens.
type MockProvider struct {
	log *slog.Logger
}

// NewMockProvider creates a deterministic mock provider.
func NewMockProvider(log *slog.Logger) *MockProvider {
	return &MockProvider{log: log}
}

// Geocode maps the address line onto coordinates near the base point.
func (mp *MockProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	latOffset, lonOffset := hashOffsets(HashAddress(address))

	coords := &models.Coordinates{
		Latitude:  MockBaseLatitude + latOffset,
		Longitude: MockBaseLongitude + lonOffset,
	}

	mp.log.DebugContext(ctx, "Geocoded using mock provider", "address", address,
		"lat", coords.Latitude, "lon", coords.Longitude)

	return coords, nil
}

// HashAddress computes the 31-based polynomial hash of the address over its
// UTF-16 code units, wrapping in signed 32-bit arithmetic.
func HashAddress(address string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(address)) {
		hash = hash*31 + int32(unit)
	}

	return hash
}

// hashOffsets derives the latitude and longitude offsets in degrees.
// Go's % truncates toward zero, so negative hashes give negative offsets,
// and >> on int32 is an arithmetic shift.
func hashOffsets(hash int32) (float64, float64) {
	lat := float64(hash%offsetModulus) / offsetScale
	lon := float64((hash>>lonHashShift)%offsetModulus) / offsetScale

	return lat, lon
}
