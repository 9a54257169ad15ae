// internal/core/services/projector.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// Projector computes a box's current-state row by folding its ledger
// history. It never writes the projection itself; the event service
// persists the result inside the same transaction as the ledger change.
type Projector struct {
	events ports.EventRepository
	logger *slog.Logger
}

// NewProjector creates a new projector
func NewProjector(events ports.EventRepository, logger *slog.Logger) *Projector {
	return &Projector{
		events: events,
		logger: logger.With(slog.String("service", "projector")),
	}
}

// Project folds the box's non-reversed events into its current state
func (p *Projector) Project(ctx context.Context, boxID string) (*domain.InventoryState, error) {
	return p.ProjectWith(ctx, p.events, boxID)
}

// ProjectWith runs the fold against the given repository, letting the
// caller supply a transaction-scoped one so the refold reads the ledger
// state as of that transaction.
func (p *Projector) ProjectWith(ctx context.Context, events ports.EventRepository, boxID string) (*domain.InventoryState, error) {
	history, err := events.FindByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event history: %w", err)
	}

	state := domain.FoldEvents(boxID, history)
	state.UpdatedAt = time.Now().UTC()

	p.logger.DebugContext(ctx, "projected box state",
		slog.String("box_id", boxID),
		slog.Int("events", len(history)),
		slog.String("status", string(state.Status)))

	return &state, nil
}
