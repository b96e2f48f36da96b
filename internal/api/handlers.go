// Package api exposes the geo service over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pravinmishra000/freshoz-geo/internal/geo"
	"github.com/pravinmishra000/freshoz-geo/internal/models"
)

const maxBodyBytes = 1 << 20

// AddressResolver resolves addresses, returning nil when coordinates are unavailable.
type AddressResolver interface {
	Resolve(ctx context.Context, addr models.Address) *models.Coordinates
}

// Handler serves the geocoding and distance endpoints.
type Handler struct {
	log      *slog.Logger
	resolver AddressResolver
	store    models.Coordinates
	radiusKm float64
}

// NewHandler creates the API handler. Distances without an origin are measured from store.
func NewHandler(log *slog.Logger, resolver AddressResolver, store models.Coordinates, radiusKm float64) *Handler {
	return &Handler{log: log, resolver: resolver, store: store, radiusKm: radiusKm}
}

type geocodeResponse struct {
	Coordinates *models.Coordinates `json:"coordinates"`
}

type distanceRequest struct {
	From *models.Coordinates `json:"from"`
	To   *models.Coordinates `json:"to"`
}

type distanceResponse struct {
	DistanceKm           float64 `json:"distance_km"`
	WithinDeliveryRadius bool    `json:"within_delivery_radius"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var (
	errEmptyAddress       = errors.New("address must have at least one field")
	errMissingDestination = errors.New("destination coordinates are required")
	errInvalidCoordinates = errors.New("coordinates out of range")
)

// Geocode resolves a structured address. An unresolvable address is not an error:
// the response carries null coordinates.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	var addr models.Address
	if err := decodeBody(w, r, &addr); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	if addr.IsEmpty() {
		h.writeError(w, r, http.StatusBadRequest, errEmptyAddress)
		return
	}

	coords := h.resolver.Resolve(r.Context(), addr)
	h.writeJSON(w, r, http.StatusOK, geocodeResponse{Coordinates: coords})
}

// Distance measures the great-circle distance between two points, from the store
// when no origin is given.
func (h *Handler) Distance(w http.ResponseWriter, r *http.Request) {
	var req distanceRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	if req.To == nil {
		h.writeError(w, r, http.StatusBadRequest, errMissingDestination)
		return
	}

	from := h.store
	if req.From != nil {
		from = *req.From
	}

	if !from.Valid() || !req.To.Valid() {
		h.writeError(w, r, http.StatusBadRequest, errInvalidCoordinates)
		return
	}

	km := geo.Distance(from, *req.To)
	h.writeJSON(w, r, http.StatusOK, distanceResponse{
		DistanceKm:           km,
		WithinDeliveryRadius: geo.Within(from, *req.To, h.radiusKm),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid request body")
	}

	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	h.log.DebugContext(r.Context(), "Rejecting request", "path", r.URL.Path, "status", status, "error", err)
	h.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}
