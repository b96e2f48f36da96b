package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
	"golang.org/x/time/rate"
)

// NominatimBaseURL is the public OpenStreetMap Nominatim search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// NominatimUserAgent identifies the service as required by the Nominatim usage policy.
const NominatimUserAgent = "Freshoz-Geo/1.0 (https://github.com/pravinmishra000/freshoz-geo)"

// NominatimProvider implements the Provider interface using OpenStreetMap's Nominatim API.
// The public instance allows one request per second, which the limiter enforces.
type NominatimProvider struct {
	client    HTTPClient    // HTTP client for making requests
	baseURL   string        // Base URL for the Nominatim API
	log       *slog.Logger  // Logger for logging operations
	limiter   *rate.Limiter // Limiter keeping requests within the usage policy
	userAgent string
}

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type nominatimResponse struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a Nominatim provider for the public endpoint.
func NewNominatimProvider(log *slog.Logger) *NominatimProvider {
	const timeout = 10 * time.Second

	return NewNominatimProviderWithClient(
		&http.Client{Timeout: timeout},
		NominatimBaseURL,
		rate.NewLimiter(rate.Every(time.Second), 1),
		log,
	)
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom HTTP client,
// endpoint and limiter.
func NewNominatimProviderWithClient(
	client HTTPClient,
	baseURL string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *NominatimProvider {
	return &NominatimProvider{
		client:    client,
		baseURL:   baseURL,
		log:       log,
		limiter:   limiter,
		userAgent: NominatimUserAgent,
	}
}

// Geocode converts an address line to coordinates. When the full line has no match it
// retries with the leading components dropped, so "street, city, state zip" falls back
// to "city, state zip" and then "state zip".
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	variations := addressFallbacks(address)

	for idx, variation := range variations {
		coords, err := np.search(ctx, variation)
		if err == nil {
			if idx > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback address",
					"original", address,
					"fallback", variation,
					"fallback_level", idx)
			}
			return coords, nil
		}

		if !errors.Is(err, ErrNominatimEmptyResponse) {
			return nil, err
		}

		np.log.DebugContext(ctx, "Address variation returned no results", "variation", variation, "fallback_level", idx)
	}

	np.log.WarnContext(ctx, "All address fallbacks exhausted", "address", address, "variations_tried", len(variations))

	return nil, ErrNominatimEmptyResponse
}

// addressFallbacks lists the address followed by progressively coarser variants.
// Empty components are dropped so no query starts with a bare separator.
func addressFallbacks(address string) []string {
	parts := []string{}
	for part := range strings.SplitSeq(address, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return []string{address}
	}

	variations := make([]string, 0, len(parts))
	for start := range parts {
		variations = append(variations, strings.Join(parts[start:], ", "))
	}

	return variations
}

// search performs a single rate-limited request without fallback logic.
func (np *NominatimProvider) search(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", np.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
