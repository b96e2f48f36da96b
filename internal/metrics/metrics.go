package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	OrdersProcessed  *prometheus.CounterVec
	Resolutions      *prometheus.CounterVec
	ProviderErrors   prometheus.Counter
	RequestSeconds   *prometheus.HistogramVec
	CacheLookups     *prometheus.CounterVec
	DeliveryDistance prometheus.Histogram
	ActiveWorkers    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		OrdersProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "freshoz_delivery_orders_processed_total",
			Help: "Total number of orders processed by the delivery distance worker.",
		}, []string{"status"}),
		Resolutions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "freshoz_address_resolutions_total",
			Help: "Total number of address resolutions by outcome.",
		}, []string{"status"}),
		ProviderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "freshoz_geocoding_provider_errors_total",
			Help: "Total number of errors received from the geocoding provider.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshoz_geocoding_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "freshoz_geocoding_cache_lookups_total",
			Help: "Geocoding cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		DeliveryDistance: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "freshoz_delivery_distance_km",
			Help:    "Distance between the store and resolved delivery addresses.",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 500},
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "freshoz_delivery_active_workers",
			Help: "Current number of active workers processing orders.",
		}),
	}
}
