package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider resolves addresses with the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrGoogleEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrGoogleEmptyResponse = errors.New("google maps API returned empty response")

// NewGoogleProvider creates a GoogleProvider around an existing API client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode returns the location of the best Google match for the address line.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	req := maps.GeocodingRequest{Address: address}
	results, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrGoogleEmptyResponse
	}

	best := results[0]
	if best.PartialMatch {
		gp.log.InfoContext(ctx, "Google returned a partial match", "address", address,
			"formatted", best.FormattedAddress)
	}
	location := best.Geometry.Location

	return &models.Coordinates{Latitude: location.Lat, Longitude: location.Lng}, nil
}
