package geocoding_test

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/pravinmishra000/freshoz-geo/internal/geocoding"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAddress(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(0), geocoding.HashAddress(""))
	assert.Equal(t, int32(97), geocoding.HashAddress("a"))
	assert.Equal(t, int32(3105), geocoding.HashAddress("ab"))
	// Wraps in 32-bit two's complement.
	assert.Equal(t, int32(-862545276), geocoding.HashAddress("Hello World"))
	assert.Equal(t, int32(-613465901), geocoding.HashAddress("1 Main St, Springfield, IL 62701"))
}

func TestMockProvider_Geocode(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	provider := geocoding.NewMockProvider(slog.Default())

	t.Run("springfield address", func(t *testing.T) {
		t.Parallel()
		addr := models.Address{Street: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"}

		first, err := provider.Geocode(ctx, addr.Canonical())
		require.NoError(t, err)
		second, err := provider.Geocode(ctx, addr.Canonical())
		require.NoError(t, err)

		assert.Equal(t, *first, *second)
		assert.InDelta(t, 34.00715, first.Latitude, 1e-9)
		assert.InDelta(t, -118.26175, first.Longitude, 1e-9)
	})

	t.Run("small positive hash", func(t *testing.T) {
		t.Parallel()
		coords, err := provider.Geocode(ctx, "a")

		require.NoError(t, err)
		assert.InDelta(t, 34.05705, coords.Latitude, 1e-9)
		assert.InDelta(t, geocoding.MockBaseLongitude, coords.Longitude, 1e-9)
	})

	t.Run("empty address lands on the base point", func(t *testing.T) {
		t.Parallel()
		coords, err := provider.Geocode(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, models.Coordinates{
			Latitude:  geocoding.MockBaseLatitude,
			Longitude: geocoding.MockBaseLongitude,
		}, *coords)
	})

	t.Run("results stay near the base point", func(t *testing.T) {
		t.Parallel()
		for i := range 2000 {
			addr := models.Address{
				Street: fmt.Sprintf("%d Market St", i),
				City:   "Los Angeles",
				State:  "CA",
				Zip:    fmt.Sprintf("%05d", 90000+i),
			}

			coords, err := provider.Geocode(ctx, addr.Canonical())
			require.NoError(t, err)
			require.True(t, coords.Valid())
			require.GreaterOrEqual(t, coords.Latitude, 34.0022)
			require.LessOrEqual(t, coords.Latitude, 34.1022)
			require.GreaterOrEqual(t, coords.Longitude, -118.2937)
			require.LessOrEqual(t, coords.Longitude, -118.1937)
		}
	})

	t.Run("non-ascii address", func(t *testing.T) {
		t.Parallel()
		// "é" is one UTF-16 unit (233), so the hash is 233.
		coords, err := provider.Geocode(ctx, "é")

		require.NoError(t, err)
		assert.InDelta(t, geocoding.MockBaseLatitude+233.0/20000, coords.Latitude, 1e-9)
	})

	t.Run("concurrent callers agree", func(t *testing.T) {
		t.Parallel()
		address := "22 Elm Rd, Pasadena, CA 91101"
		want, err := provider.Geocode(ctx, address)
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make([]models.Coordinates, 16)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, _ := provider.Geocode(ctx, address)
				results[i] = *got
			}()
		}
		wg.Wait()

		for _, got := range results {
			assert.Equal(t, *want, got)
		}
	})
}
