package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/metrics"
	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeMock represents the deterministic hash-based provider.
	ProviderTypeMock ProviderType = "mock"
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType     // Type of provider to create
	APIKey    string           // API key (Google only)
	RateLimit int              // Rate limit for requests per second (Google only)
	Logger    *slog.Logger     // Logger for the provider
	Cache     Cache            // Optional cache for network providers
	CacheTTL  time.Duration    // Lifetime of cached results
	Metrics   *metrics.Metrics // Metrics for cache lookups, required when Cache is set
}

// NewProvider creates a geocoding provider based on the provided configuration.
//
// Supported provider types:
// - "mock": deterministic offline provider, no API key
// - "google": Google Maps Geocoding API (requires API key)
// - "nominatim": OpenStreetMap Nominatim API (free, no API key required)
//
// Network providers are wrapped in a CachedProvider when a cache is configured.
func NewProvider(config ProviderConfig) (Provider, error) {
	var (
		provider Provider
		err      error
	)

	switch config.Type {
	case ProviderTypeMock:
		return NewMockProvider(config.Logger), nil
	case ProviderTypeGoogle:
		provider, err = newGoogleProvider(config)
	case ProviderTypeNominatim:
		provider = NewNominatimProvider(config.Logger)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}

	if err != nil {
		return nil, err
	}

	if config.Cache != nil {
		if config.Metrics == nil {
			return nil, errors.New("metrics are required for cached providers")
		}
		provider = NewCachedProvider(provider, config.Cache, config.CacheTTL, config.Logger, config.Metrics)
	}

	return provider, nil
}

// newGoogleProvider creates a Google Maps geocoding provider.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}

	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}
