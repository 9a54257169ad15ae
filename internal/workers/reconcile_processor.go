// internal/workers/reconcile_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
	"github.com/jsalcedo/boxtrack-be/internal/pkg/config"
)

// Task type names
const (
	TypeReconcileStale = "projection:reconcile_stale"
	TypeReprojectBox   = "projection:reproject_box"
)

// ReconcileProcessor repairs projection rows that lag behind the event ledger
type ReconcileProcessor struct {
	events ports.EventService
	config *config.Config
	logger *slog.Logger
}

// NewReconcileProcessor creates a new reconcile processor
func NewReconcileProcessor(events ports.EventService, config *config.Config, logger *slog.Logger) *ReconcileProcessor {
	return &ReconcileProcessor{
		events: events,
		config: config,
		logger: logger.With(slog.String("processor", "reconcile")),
	}
}

// ReprojectBoxPayload carries the box to refold for a targeted repair task
type ReprojectBoxPayload struct {
	BoxID string `json:"box_id"`
}

// NewReprojectBoxTask creates a task that refolds a single box's projection
func NewReprojectBoxTask(boxID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReprojectBoxPayload{BoxID: boxID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reproject payload: %w", err)
	}
	return asynq.NewTask(TypeReprojectBox, payload), nil
}

// ReconcileStale sweeps for boxes whose projection is behind the ledger
// and refolds them. The ledger stays the source of truth; this only
// repairs the derived rows.
func (p *ReconcileProcessor) ReconcileStale(ctx context.Context, t *asynq.Task) error {
	limit := p.config.Reconcile.BatchLimit

	p.logger.InfoContext(ctx, "reconciling stale projections",
		slog.Int("batch_limit", limit))

	repaired, err := p.events.ReconcileStale(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to reconcile stale projections: %w", err)
	}

	if repaired > 0 {
		p.logger.WarnContext(ctx, "stale projections repaired",
			slog.Int("repaired", repaired))
	} else {
		p.logger.DebugContext(ctx, "projections in sync")
	}

	return nil
}

// ReprojectBox refolds one box's projection from its full event history
func (p *ReconcileProcessor) ReprojectBox(ctx context.Context, t *asynq.Task) error {
	var payload ReprojectBoxPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal reproject payload: %w", err)
	}
	if payload.BoxID == "" {
		return fmt.Errorf("reproject task missing box_id")
	}

	state, err := p.events.Reproject(ctx, payload.BoxID)
	if err != nil {
		return fmt.Errorf("failed to reproject box %s: %w", payload.BoxID, err)
	}

	p.logger.InfoContext(ctx, "box reprojected",
		slog.String("box_id", payload.BoxID),
		slog.String("status", string(state.Status)))

	return nil
}
