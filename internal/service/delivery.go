package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pravinmishra000/freshoz-geo/internal/geo"
	"github.com/pravinmishra000/freshoz-geo/internal/metrics"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
	"github.com/pravinmishra000/freshoz-geo/internal/repository"
)

const orderBatchLimit = 100

// Locator resolves a delivery address or explains why it could not.
type Locator interface {
	Lookup(ctx context.Context, addr models.Address) (*models.Coordinates, error)
}

// DeliveryService fills in delivery coordinates and store distance for open orders.
type DeliveryService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for order storage
	locator      Locator              // Address resolver
	store        models.Coordinates   // Location deliveries are measured from
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval between polls for new orders
}

// NewDeliveryService creates a new instance of DeliveryService.
func NewDeliveryService(
	log *slog.Logger,
	repo repository.Interface,
	locator Locator,
	store models.Coordinates,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *DeliveryService {
	if numWorkers < 1 {
		numWorkers = 1
	}

	return &DeliveryService{
		log:          log,
		repo:         repo,
		locator:      locator,
		store:        store,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run polls for orders to locate until the context is cancelled.
func (ds *DeliveryService) Run(ctx context.Context) {
	ticker := time.NewTicker(ds.pollInterval)
	defer ticker.Stop()

	ds.log.InfoContext(ctx, "Delivery distance service started...")

	for {
		select {
		case <-ctx.Done():
			ds.log.InfoContext(ctx, "Delivery distance service stopped.")
			return
		case <-ticker.C:
			ds.log.InfoContext(ctx, "Polling for orders without delivery location...")
			ds.processOrders(ctx)
		}
	}
}

// processOrders fetches one batch of orders and spreads it over the worker pool,
// returning once every order in the batch has been handled.
func (ds *DeliveryService) processOrders(ctx context.Context) {
	orders, err := ds.repo.FetchOrdersForGeocoding(ctx, orderBatchLimit)
	if err != nil {
		ds.log.ErrorContext(ctx, "Failed to fetch orders", "error", err)
		return
	}
	if len(orders) == 0 {
		ds.log.InfoContext(ctx, "No orders to process.")
		return
	}

	ds.log.InfoContext(ctx, "Found orders to process. Starting worker pool.",
		"jobs", len(orders),
		"num_workers", ds.numWorkers)

	jobs := make(chan models.Order, len(orders))
	var wgr sync.WaitGroup

	for i := 1; i <= ds.numWorkers; i++ {
		wgr.Add(1)
		go ds.worker(ctx, i, &wgr, jobs)
	}

	for _, order := range orders {
		jobs <- order
	}
	close(jobs)

	wgr.Wait()
	ds.log.InfoContext(ctx, "Processing batch finished")
}

func (ds *DeliveryService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Order) {
	defer wg.Done()
	for order := range jobs {
		ds.metrics.ActiveWorkers.Inc()
		ds.handleOrder(ctx, idx, order)
		ds.metrics.ActiveWorkers.Dec()
	}
}

func (ds *DeliveryService) handleOrder(ctx context.Context, idx int, order models.Order) {
	ds.log.DebugContext(ctx, "Processing order", "worker", idx, "order", order.ID)

	coords, err := ds.locator.Lookup(ctx, order.Address)
	if err != nil {
		ds.log.ErrorContext(ctx, "Failed to locate order", "worker", idx, "order", order.ID, "error", err)
		ds.metrics.OrdersProcessed.WithLabelValues("failure").Inc()

		if err = ds.repo.IncrementFailureCount(ctx, order.ID, err.Error()); err != nil {
			ds.log.ErrorContext(ctx, "Could not update failure count for order",
				"worker", idx,
				"order", order.ID,
				"error", err)
		}
		return
	}

	distanceKm := geo.Distance(ds.store, *coords)
	ds.metrics.DeliveryDistance.Observe(distanceKm)
	ds.metrics.OrdersProcessed.WithLabelValues("success").Inc()

	if err = ds.repo.UpdateDeliveryLocation(ctx, order.ID, *coords, distanceKm); err != nil {
		ds.log.ErrorContext(ctx, "Failed to update delivery location for order",
			"worker", idx,
			"order", order.ID,
			"error", err)
		return
	}

	ds.log.DebugContext(ctx, "Worker located the order", "worker", idx, "order", order.ID, "distance_km", distanceKm)
}
