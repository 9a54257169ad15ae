// internal/handlers/locations.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// LocationHandler handles location HTTP requests
type LocationHandler struct {
	service ports.LocationService
	logger  *slog.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service ports.LocationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "locations")),
	}
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Zone  string `json:"zone"`
	Aisle string `json:"aisle"`
	Rack  string `json:"rack"`
	Shelf string `json:"shelf"`
}

// CreateLocation handles POST /api/v1/locations
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	location := &domain.Location{
		Zone:  req.Zone,
		Aisle: req.Aisle,
		Rack:  req.Rack,
		Shelf: req.Shelf,
	}

	if err := h.service.Create(ctx, location); err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to create location")
		return
	}

	h.logger.InfoContext(ctx, "location created",
		slog.String("location_code", location.LocationCode))

	respondJSON(w, h.logger, http.StatusCreated, location)
}

// ListLocations handles GET /api/v1/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locations, err := h.service.List(ctx)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to list locations")
		return
	}

	if locations == nil {
		locations = []domain.Location{}
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// GetOccupancy handles GET /api/v1/locations/{id}/occupancy
func (h *LocationHandler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid location ID format")
		return
	}

	occupancy, err := h.service.Occupancy(ctx, id)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to retrieve occupancy")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, occupancy)
}
