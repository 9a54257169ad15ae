// internal/handlers/stats.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// StatsHandler handles dashboard statistics requests
type StatsHandler struct {
	service ports.StatsService
	logger  *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service ports.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stats")),
	}
}

// Today handles GET /api/v1/stats/today
func (h *StatsHandler) Today(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Today(ctx)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to compute stats")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, stats)
}
