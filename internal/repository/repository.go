package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// Database is the subset of *pgxpool.Pool the repository needs.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchOrdersForGeocoding(ctx context.Context, limit int) ([]models.Order, error)
	UpdateDeliveryLocation(ctx context.Context, orderID int, coords models.Coordinates, distanceKm float64) error
	IncrementFailureCount(ctx context.Context, orderID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
