package geocoding

import (
	"context"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and a canonical address line as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
