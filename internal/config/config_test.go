package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/pravinmishra000/freshoz-geo/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("FRESHOZ_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("FRESHOZ_ENV", "local")
	t.Setenv("FRESHOZ_INTERVAL", "10m")
	t.Setenv("FRESHOZ_PROVIDER_TYPE", "google")
	t.Setenv("FRESHOZ_PROVIDER_KEY", "testAPIKey")
	t.Setenv("FRESHOZ_STORE_LAT", "28.6139")
	t.Setenv("FRESHOZ_STORE_LON", "77.2090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, config.StoreConfig{Latitude: 28.6139, Longitude: 77.2090}, cfg.Store)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
}

func Test_MustLoadDefaults(t *testing.T) {
	t.Setenv("FRESHOZ_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg := config.MustLoad()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.Interval)
	assert.Equal(t, 720*time.Hour, cfg.CacheTTL)
	assert.InDelta(t, 10.0, cfg.DeliveryRadiusKm, 0)
	assert.Equal(t, config.StoreConfig{Latitude: 34.0522, Longitude: -118.2437}, cfg.Store)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Zero(t, cfg.Redis.DB)
}

func Test_MustLoadFromDotEnv(t *testing.T) {
	defer filet.CleanUp(t)
	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, ".env")
	filet.File(t, path, "FRESHOZ_WORKERS=7\nFRESHOZ_DELIVERY_RADIUS_KM=12.5\n")

	t.Setenv("FRESHOZ_ENV_FILE", path)
	t.Cleanup(func() {
		_ = os.Unsetenv("FRESHOZ_WORKERS")
		_ = os.Unsetenv("FRESHOZ_DELIVERY_RADIUS_KM")
	})

	cfg := config.MustLoad()

	assert.Equal(t, 7, cfg.Workers)
	assert.InDelta(t, 12.5, cfg.DeliveryRadiusKm, 0)
}

func TestMustLoad_Errors(t *testing.T) {
	tests := []struct {
		key   string
		value string
		panic string
	}{
		{"FRESHOZ_INTERVAL", "error_value", "failed to parse interval from configuration"},
		{"FRESHOZ_CACHE_TTL", "error_value", "failed to parse cache ttl from configuration"},
		{"FRESHOZ_PORT", "error_value", "failed to parse port for API server from configuration"},
		{"FRESHOZ_WORKERS", "error_value", "failed to parse workers from configuration, must be an integer types"},
		{"FRESHOZ_RATE_LIMIT", "error_value", "failed to parse rate limit from configuration, must be an integer types"},
		{"REDIS_DB", "error_value", "failed to parse redis db from configuration, must be an integer types"},
		{"FRESHOZ_STORE_LAT", "91", "failed to parse store latitude from configuration"},
		{"FRESHOZ_STORE_LON", "NaN", "failed to parse store longitude from configuration"},
		{"FRESHOZ_DELIVERY_RADIUS_KM", "-1", "failed to parse delivery radius from configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("FRESHOZ_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
			t.Setenv(tt.key, tt.value)

			assert.PanicsWithValue(t, tt.panic, func() {
				config.MustLoad()
			})
		})
	}
}
