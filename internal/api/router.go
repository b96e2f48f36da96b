package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires the API, health check and metrics endpoints.
func NewRouter(log *slog.Logger, handler *Handler, gatherer prometheus.Gatherer, dtb Pinger) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/geocode", handler.Geocode).Methods(http.MethodPost)
	router.HandleFunc("/api/distance", handler.Distance).Methods(http.MethodPost)

	router.HandleFunc("/healthz", healthz(log, dtb)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return router
}

func healthz(log *slog.Logger, dtb Pinger) http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		log.DebugContext(ctx, "Performing health checks...")

		status, body := http.StatusOK, "OK"
		if err := dtb.Ping(ctx); err != nil {
			status, body = http.StatusServiceUnavailable, "DB ping failed"
		}

		writer.WriteHeader(status)
		if _, err := writer.Write([]byte(body)); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}

		log.DebugContext(ctx, "Health checks completed", "status", status)
	}
}
