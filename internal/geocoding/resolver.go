package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/metrics"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// Resolver errors.
var (
	ErrResolutionFailed   = errors.New("address resolution failed")
	ErrInvalidCoordinates = errors.New("provider returned invalid coordinates")
)

// Resolver turns structured addresses into coordinates through whichever Provider
// is configured. Callers never see which variant is active.
type Resolver struct {
	provider     Provider         // provider performs the actual lookup
	providerName string           // providerName labels metrics
	log          *slog.Logger     // log is the logger for logging operations
	metrics      *metrics.Metrics // metrics tracks request duration and outcomes
}

// NewResolver creates a Resolver backed by the given provider.
func NewResolver(provider Provider, providerName string, log *slog.Logger, metrics *metrics.Metrics) *Resolver {
	return &Resolver{
		provider:     provider,
		providerName: providerName,
		log:          log,
		metrics:      metrics,
	}
}

// Lookup resolves the address and explains why when it cannot. Every returned error
// wraps ErrResolutionFailed, including a panic raised by the provider.
func (r *Resolver) Lookup(ctx context.Context, addr models.Address) (coords *models.Coordinates, err error) {
	address := addr.Canonical()

	defer func() {
		if rec := recover(); rec != nil {
			coords = nil
			err = fmt.Errorf("%w: provider panic: %v", ErrResolutionFailed, rec)
		}
		status := "success"
		if err != nil {
			status = "failure"
		}
		r.metrics.Resolutions.WithLabelValues(status).Inc()
	}()

	startTime := time.Now()
	coords, err = r.provider.Geocode(ctx, address)
	r.metrics.RequestSeconds.WithLabelValues(r.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		r.metrics.ProviderErrors.Inc()
		return nil, fmt.Errorf("%w: %w", ErrResolutionFailed, err)
	}

	if coords == nil || !coords.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrResolutionFailed, ErrInvalidCoordinates)
	}

	r.log.DebugContext(ctx, "Address resolved", "address", address, "provider", r.providerName)

	return coords, nil
}

// Resolve returns the coordinates of the address, or nil when they are unavailable.
// It never returns an error and never panics; failures are only logged.
func (r *Resolver) Resolve(ctx context.Context, addr models.Address) *models.Coordinates {
	coords, err := r.Lookup(ctx, addr)
	if err != nil {
		r.log.WarnContext(ctx, "Coordinates unavailable", "address", addr.Canonical(), "error", err)
		return nil
	}

	return coords
}
