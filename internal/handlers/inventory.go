// internal/handlers/inventory.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// InventoryHandler handles projection read requests
type InventoryHandler struct {
	states ports.StateRepository
	logger *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(states ports.StateRepository, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		states: states,
		logger: logger.With(slog.String("handler", "inventory")),
	}
}

// ListInventory handles GET /api/v1/inventory
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	result, err := h.states.List(ctx, params)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to list inventory")
		return
	}

	if result.Items == nil {
		result.Items = []ports.InventoryRow{}
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// parseListParams parses query parameters for listing inventory
func (h *InventoryHandler) parseListParams(r *http.Request) ports.InventoryListParams {
	params := ports.InventoryListParams{
		Page:     1,
		PageSize: 50,
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 200 {
				params.PageSize = 200
			} else {
				params.PageSize = l
			}
		}
	}

	params.Status = r.URL.Query().Get("status")
	params.LocationCode = r.URL.Query().Get("location")
	params.Search = r.URL.Query().Get("search")

	return params
}
