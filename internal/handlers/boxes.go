// internal/handlers/boxes.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// BoxHandler handles box HTTP requests
type BoxHandler struct {
	service ports.BoxService
	logger  *slog.Logger
}

// NewBoxHandler creates a new box handler
func NewBoxHandler(service ports.BoxService, logger *slog.Logger) *BoxHandler {
	return &BoxHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "boxes")),
	}
}

// CreateBoxRequest represents the request body for creating a box
type CreateBoxRequest struct {
	ProductID string `json:"product_id"`
	LotCode   string `json:"lot_code,omitempty"`
}

// CreateBox handles POST /api/v1/boxes
func (h *BoxHandler) CreateBox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product_id format")
		return
	}

	result, err := h.service.CreateBox(ctx, ports.CreateBoxParams{
		ProductID: productID,
		LotCode:   req.LotCode,
		Date:      time.Now().UTC(),
	})
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to create box")
		return
	}

	h.logger.InfoContext(ctx, "box created",
		slog.String("box_id", result.BoxID),
		slog.String("product_id", req.ProductID))

	respondJSON(w, h.logger, http.StatusCreated, result)
}

// GetBox handles GET /api/v1/boxes/{id}
func (h *BoxHandler) GetBox(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.service.GetDetails(ctx, r.PathValue("id"))
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to retrieve box")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, history)
}
