//go:build integration

package geocoding_test

import (
	"testing"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisCache(t *testing.T) {
	ctx := t.Context()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := geocoding.NewRedisClient(ctx, endpoint, "", 0)
	require.NoError(t, err)
	defer client.Close()

	cache := geocoding.NewRedisCache(client)
	key := geocoding.CacheKey("1 Main St, Springfield, IL 62701")

	_, err = cache.Get(ctx, key)
	require.ErrorIs(t, err, geocoding.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, key, []byte(`{"latitude":1,"longitude":2}`), time.Minute))

	value, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"latitude":1,"longitude":2}`, string(value))

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := geocoding.NewRedisClient(t.Context(), "127.0.0.1:1", "", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
