//go:build integration

package repository_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
	"github.com/pravinmishra000/freshoz-geo/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const schema = `
	CREATE TABLE public.orders (
		order_id             SERIAL PRIMARY KEY,
		street               TEXT,
		city                 TEXT,
		state                TEXT,
		zip                  TEXT,
		status               TEXT NOT NULL DEFAULT 'placed',
		delivery_latitude    DOUBLE PRECISION,
		delivery_longitude   DOUBLE PRECISION,
		delivery_distance_km DOUBLE PRECISION,
		geocoding_attempts   INT NOT NULL DEFAULT 0,
		geocoding_error      TEXT,
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	INSERT INTO public.orders (street, city, state, zip, status) VALUES
		('1 Main St', 'Springfield', 'IL', '62701', 'placed'),
		('9 Done Ave', 'Springfield', 'IL', '62701', 'delivered'),
		('', 'Nowhere', 'IL', '62701', 'placed');
`

func TestRepository_Postgres(t *testing.T) {
	ctx := t.Context()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("freshoz"),
		postgres.WithUsername("freshoz"),
		postgres.WithPassword("freshoz"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := repository.NewDatabase(ctx, host, port.Port(), "freshoz", "freshoz", "freshoz")
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, schema)
	require.NoError(t, err)

	repo := repository.NewRepository(pool, slog.Default())

	orders, err := repo.FetchOrdersForGeocoding(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1 Main St, Springfield, IL 62701", orders[0].Address.Canonical())

	require.NoError(t, repo.IncrementFailureCount(ctx, orders[0].ID, "temporary failure"))

	coords := models.Coordinates{Latitude: 34.00715, Longitude: -118.26175}
	require.NoError(t, repo.UpdateDeliveryLocation(ctx, orders[0].ID, coords, 5.1))

	var (
		attempts int
		errMsg   *string
		distance float64
	)
	row := pool.QueryRow(ctx,
		`SELECT geocoding_attempts, geocoding_error, delivery_distance_km FROM orders WHERE order_id = $1`,
		orders[0].ID)
	require.NoError(t, row.Scan(&attempts, &errMsg, &distance))
	assert.Equal(t, 1, attempts)
	assert.Nil(t, errMsg)
	assert.InDelta(t, 5.1, distance, 1e-9)

	orders, err = repo.FetchOrdersForGeocoding(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
