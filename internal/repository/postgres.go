package repository

import (
	"context"
	"fmt"

	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

// FetchOrdersForGeocoding retrieves orders whose delivery location is still unknown.
// It returns open orders that have a NULL delivery latitude, fewer than 5 geocoding
// attempts and a non-empty street. The oldest orders come first, limited to the given count.
func (r *Repository) FetchOrdersForGeocoding(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	query := `
		SELECT order_id, street, city, state, zip
		FROM public.orders
		WHERE
			delivery_latitude IS NULL
			AND status NOT IN ('delivered', 'cancelled')
			AND geocoding_attempts < 5
			AND street IS NOT NULL AND street <> ''
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query open orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var order models.Order
		addr := &order.Address
		if errScan := rows.Scan(&order.ID, &addr.Street, &addr.City, &addr.State, &addr.Zip); errScan != nil {
			return nil, fmt.Errorf("failed to scan open order: %w", errScan)
		}
		r.log.DebugContext(ctx, "Received an order without delivery coordinates",
			"ID", order.ID, "Address", addr.Canonical())
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return orders, nil
}

// UpdateDeliveryLocation stores the resolved coordinates and the distance from the store,
// clearing any previous geocoding error.
func (r *Repository) UpdateDeliveryLocation(
	ctx context.Context,
	orderID int,
	coords models.Coordinates,
	distanceKm float64,
) error {
	query := `
		UPDATE orders
		SET
			delivery_latitude = $1,
			delivery_longitude = $2,
			delivery_distance_km = $3,
			geocoding_error = NULL
		WHERE
			order_id = $4;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, distanceKm, orderID)
	if err != nil {
		return fmt.Errorf("failed to update delivery location: %w", err)
	}

	return nil
}

// IncrementFailureCount bumps the geocoding attempt count of the order and records the error.
func (r *Repository) IncrementFailureCount(ctx context.Context, orderID int, errMsg string) error {
	query := `
		UPDATE orders
		SET
			geocoding_attempts = geocoding_attempts + 1,
			geocoding_error = $1
		WHERE order_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, orderID)
	if err != nil {
		return fmt.Errorf("failed to update geocoding error and number of attempts: %w", err)
	}

	return nil
}
