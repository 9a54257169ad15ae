// internal/core/services/rules.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// RulesEngine validates candidate events against static rules and the box's
// current projected state. Rules run in a fixed order and the first failing
// hard rule short-circuits; the soft exception check only runs when every
// hard rule passed.
type RulesEngine struct {
	events ports.EventRepository
	states ports.StateRepository
	logger *slog.Logger
}

// Statically assert that *RulesEngine implements the RulesEngine interface.
var _ ports.RulesEngine = (*RulesEngine)(nil)

// NewRulesEngine creates a new rules engine
func NewRulesEngine(events ports.EventRepository, states ports.StateRepository, logger *slog.Logger) *RulesEngine {
	return &RulesEngine{
		events: events,
		states: states,
		logger: logger.With(slog.String("service", "rules")),
	}
}

// Validate checks a proposed event. The location id is the already-resolved
// destination (nil when the submission carried no resolvable code). Hard
// failures return a domain.ErrValidation-kind error and nothing may be
// persisted; a non-nil exception tag with a nil error marks an accepted
// anomaly to record on the event.
func (r *RulesEngine) Validate(ctx context.Context, mode domain.Mode, eventType domain.EventType, boxID string, locationID *uuid.UUID) (*domain.ExceptionType, string, error) {
	// Mode and event type must agree.
	if !mode.Agrees(eventType) {
		return nil, "", fmt.Errorf("mode %s does not allow %s events: %w", mode, eventType, domain.ErrValidation)
	}

	// A MOVE needs a destination.
	if eventType == domain.EventMove && locationID == nil {
		return nil, "", fmt.Errorf("MOVE event requires a destination location: %w", domain.ErrValidation)
	}

	// A MOVE of a box that is not in the warehouse is rejected outright.
	if eventType == domain.EventMove {
		state, err := r.states.FindByBox(ctx, boxID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load box state: %w", err)
		}
		if state == nil || state.Status == domain.StatusOutOfWarehouse {
			tag := domain.ExceptionMoveWhenOut
			return &tag, "", fmt.Errorf("cannot move box that is out of warehouse, receive box first (INBOUND mode): %w", domain.ErrValidation)
		}
	}

	// Shipping a box that was never received is accepted but tagged.
	if eventType == domain.EventOut {
		hasIn, err := r.events.HasInEvent(ctx, boxID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to check receive history: %w", err)
		}
		if !hasIn {
			r.logger.WarnContext(ctx, "OUT event for box with no IN history",
				slog.String("box_id", boxID))
			tag := domain.ExceptionOutWithoutIn
			return &tag, "Box was never received (no IN event found)", nil
		}
	}

	return nil, "", nil
}
