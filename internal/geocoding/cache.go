package geocoding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/metrics"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// DefaultCacheTTL is how long resolved coordinates stay cached when no TTL is configured.
const DefaultCacheTTL = 30 * 24 * time.Hour

const cacheKeyPrefix = "geo:v1:geocode:"

// ErrCacheMiss is returned by a Cache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores serialized geocoding results.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedProvider decorates a network provider with a read-through cache.
// Cache failures never fail a lookup; they only cost a provider call.
type CachedProvider struct {
	next    Provider
	cache   Cache
	ttl     time.Duration
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewCachedProvider wraps next with cache. A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedProvider(
	next Provider,
	cache Cache,
	ttl time.Duration,
	log *slog.Logger,
	metrics *metrics.Metrics,
) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &CachedProvider{next: next, cache: cache, ttl: ttl, log: log, metrics: metrics}
}

// CacheKey returns the cache key for an address line. Case and surrounding
// whitespace do not change the key.
func CacheKey(address string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(address))))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Geocode serves the address from cache when possible and stores fresh results.
func (cp *CachedProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	key := CacheKey(address)

	if coords, ok := cp.lookup(ctx, key); ok {
		return coords, nil
	}

	coords, err := cp.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}
	if coords == nil || !coords.Valid() {
		return coords, nil
	}

	payload, err := json.Marshal(coords)
	if err != nil {
		return nil, fmt.Errorf("failed to encode coordinates for cache: %w", err)
	}

	if err = cp.cache.Set(ctx, key, payload, cp.ttl); err != nil {
		cp.log.WarnContext(ctx, "Failed to store coordinates in cache", "key", key, "error", err)
	}

	return coords, nil
}

func (cp *CachedProvider) lookup(ctx context.Context, key string) (*models.Coordinates, bool) {
	cached, err := cp.cache.Get(ctx, key)
	switch {
	case errors.Is(err, ErrCacheMiss):
		cp.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	case err != nil:
		cp.metrics.CacheLookups.WithLabelValues("error").Inc()
		cp.log.WarnContext(ctx, "Geocoding cache unavailable", "key", key, "error", err)
		return nil, false
	}

	var coords *models.Coordinates
	if err = json.Unmarshal(cached, &coords); err != nil || coords == nil || !coords.Valid() {
		cp.metrics.CacheLookups.WithLabelValues("error").Inc()
		cp.log.WarnContext(ctx, "Discarding corrupt cache entry", "key", key)
		return nil, false
	}

	cp.metrics.CacheLookups.WithLabelValues("hit").Inc()
	cp.log.DebugContext(ctx, "Geocoding cache hit", "key", key)

	return coords, true
}
