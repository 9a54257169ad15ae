// internal/handlers/events.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// EventHandler handles scan event HTTP requests
type EventHandler struct {
	service ports.EventService
	logger  *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(service ports.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "events")),
	}
}

// CreateEventRequest represents the request body for submitting a scan event
type CreateEventRequest struct {
	ClientEventID string `json:"client_event_id"`
	EventType     string `json:"event_type"`
	BoxID         string `json:"box_id"`
	LocationCode  string `json:"location_code,omitempty"`
	Mode          string `json:"mode"`
	SourceType    string `json:"source_type"`
	SourceID      string `json:"source_id,omitempty"`
}

// CreateEvent handles POST /api/v1/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateEvent(ctx, ports.CreateEventParams{
		ClientEventID: req.ClientEventID,
		EventType:     domain.EventType(req.EventType),
		BoxID:         req.BoxID,
		LocationCode:  req.LocationCode,
		Mode:          domain.Mode(req.Mode),
		SourceType:    domain.SourceType(req.SourceType),
		SourceID:      req.SourceID,
	})
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to process event")
		return
	}

	h.logger.InfoContext(ctx, "event processed",
		slog.String("event_id", result.EventID.String()),
		slog.String("box_id", result.BoxID),
		slog.Bool("is_duplicate", result.IsDuplicate))

	status := http.StatusCreated
	if result.IsDuplicate {
		status = http.StatusOK
	}
	respondJSON(w, h.logger, status, result)
}

// UndoEvent handles POST /api/v1/events/{id}/undo
func (h *EventHandler) UndoEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid event ID format")
		return
	}

	result, err := h.service.UndoEvent(ctx, eventID)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to undo event")
		return
	}

	h.logger.InfoContext(ctx, "event undone",
		slog.String("event_id", eventID.String()),
		slog.String("box_id", result.BoxID))

	respondJSON(w, h.logger, http.StatusOK, result)
}

// ListEvents handles GET /api/v1/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, false)
}

// ListExceptions handles GET /api/v1/exceptions
func (h *EventHandler) ListExceptions(w http.ResponseWriter, r *http.Request) {
	h.listEvents(w, r, true)
}

func (h *EventHandler) listEvents(w http.ResponseWriter, r *http.Request, exceptionsOnly bool) {
	ctx := r.Context()

	params := ports.EventListParams{
		BoxID:          domain.StripBoxPrefix(r.URL.Query().Get("box_id")),
		ExceptionsOnly: exceptionsOnly,
	}

	if !exceptionsOnly && r.URL.Query().Get("exceptions") == "true" {
		params.ExceptionsOnly = true
	}

	if since := r.URL.Query().Get("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid since timestamp, expected RFC3339")
			return
		}
		params.Since = &t
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			params.Limit = l
		}
	}

	events, err := h.service.ListEvents(ctx, params)
	if err != nil {
		respondServiceError(ctx, w, h.logger, err, "Failed to list events")
		return
	}

	if events == nil {
		events = []domain.Event{}
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}
