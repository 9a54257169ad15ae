// internal/core/services/events.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

const pgUniqueViolation = "23505"

// Response messages returned to scanner clients
const (
	msgEventCreated    = "Event created successfully"
	msgAlreadyAtPlace  = "Box already at this location"
	msgAlreadyDone     = "Event already processed"
	msgEventUndone     = "Event undone successfully"
	msgStateReconciled = "projection reconciled"
)

// EventService owns the event ledger: idempotent ingestion, undo and the
// projection rows derived from the ledger. The event append and the
// projection upsert always share one transaction so readers never observe
// an appended event with a stale projection.
type EventService struct {
	db        ports.Database
	events    ports.EventRepository
	states    ports.StateRepository
	boxes     ports.BoxRepository
	locations ports.LocationRepository
	rules     ports.RulesEngine
	resolver  ports.LocationResolver
	projector *Projector
	cache     ports.CacheRepository
	logger    *slog.Logger
}

// Statically assert that *EventService implements the EventService interface.
var _ ports.EventService = (*EventService)(nil)

// NewEventService creates a new event service
func NewEventService(
	db ports.Database,
	events ports.EventRepository,
	states ports.StateRepository,
	boxes ports.BoxRepository,
	locations ports.LocationRepository,
	rules ports.RulesEngine,
	resolver ports.LocationResolver,
	projector *Projector,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		db:        db,
		events:    events,
		states:    states,
		boxes:     boxes,
		locations: locations,
		rules:     rules,
		resolver:  resolver,
		projector: projector,
		cache:     cache,
		logger:    logger.With(slog.String("service", "events")),
	}
}

// CreateEvent validates and appends a scan event, updating the box's
// projection in the same transaction. Resubmissions of the same
// client_event_id are inert and return the stored event.
func (s *EventService) CreateEvent(ctx context.Context, params ports.CreateEventParams) (*ports.EventResult, error) {
	boxID := domain.StripBoxPrefix(params.BoxID)
	locationCode := domain.StripLocationPrefix(params.LocationCode)

	// The duplicate check runs before location resolution and rule
	// validation so retried submissions have no side effects at all.
	existing, err := s.events.FindByClientEventID(ctx, params.ClientEventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate event: %w", err)
	}
	if existing != nil {
		return s.duplicateResult(ctx, existing)
	}

	details, err := s.boxes.FindDetails(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up box: %w", err)
	}
	if details == nil {
		return nil, fmt.Errorf("box %s: %w", boxID, domain.ErrNotFound)
	}

	var locationID *uuid.UUID
	if locationCode != "" {
		id, err := s.resolver.Resolve(ctx, locationCode)
		if err != nil {
			return nil, err
		}
		locationID = &id
	} else if params.EventType == domain.EventIn {
		// Un-located IN scans land at RECEIVING.
		id, ok, err := s.resolver.ReceivingID(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			locationID = &id
		}
	}

	exceptionType, warning, err := s.rules.Validate(ctx, params.Mode, params.EventType, boxID, locationID)
	if err != nil {
		return nil, err
	}

	message := msgEventCreated
	changed := true
	if params.EventType == domain.EventMove && locationID != nil {
		state, err := s.states.FindByBox(ctx, boxID)
		if err != nil {
			return nil, fmt.Errorf("failed to load box state: %w", err)
		}
		if state != nil && state.CurrentLocationID != nil && *state.CurrentLocationID == *locationID {
			changed = false
			message = msgAlreadyAtPlace
		}
	}

	event := &domain.Event{
		ClientEventID: params.ClientEventID,
		EventType:     params.EventType,
		BoxID:         boxID,
		LocationID:    locationID,
		Mode:          params.Mode,
		SourceType:    params.SourceType,
		SourceID:      params.SourceID,
		ExceptionType: exceptionType,
		Warning:       warning,
	}
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}
	event.PrepareForStorage()

	err = s.db.Transaction(ctx, func(tx pgx.Tx) error {
		txEvents := s.events.WithTx(tx)
		txStates := s.states.WithTx(tx)

		if err := txEvents.Insert(ctx, event); err != nil {
			return err
		}

		current, err := txStates.FindByBox(ctx, boxID)
		if err != nil {
			return err
		}
		// The new event is always the newest for the box, so advancing the
		// stored state by one event matches a full refold.
		base := domain.EmptyState(boxID)
		if current != nil {
			base = *current
		}
		next := domain.ApplyEvent(base, *event)
		next.UpdatedAt = time.Now().UTC()

		return txStates.Upsert(ctx, &next)
	})
	if err != nil {
		// A concurrent retry can slip past the read above and hit the
		// unique constraint; treat the stored row as the duplicate.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			stored, ferr := s.events.FindByClientEventID(ctx, params.ClientEventID)
			if ferr == nil && stored != nil {
				s.logger.InfoContext(ctx, "duplicate event caught by unique constraint",
					slog.String("client_event_id", params.ClientEventID))
				return s.duplicateResult(ctx, stored)
			}
		}
		return nil, fmt.Errorf("failed to append event: %w", err)
	}

	s.invalidateCaches(ctx)

	s.logger.InfoContext(ctx, "created event",
		slog.String("event_id", event.EventID.String()),
		slog.String("box_id", boxID),
		slog.String("event_type", string(event.EventType)),
		slog.Bool("changed", changed))

	return &ports.EventResult{
		Success:       true,
		Message:       message,
		Warning:       warning,
		ExceptionType: exceptionType,
		IsDuplicate:   false,
		Changed:       changed,
		EventID:       event.EventID,
		BoxID:         boxID,
		Product:       details.Product.DisplayName(),
		LotCode:       details.Box.LotCode,
	}, nil
}

// UndoEvent reverses a previously recorded event and refolds the box's
// projection from the surviving history. Any event in the history may be
// undone, not just the latest one.
func (s *EventService) UndoEvent(ctx context.Context, eventID uuid.UUID) (*ports.UndoResult, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up event: %w", err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}
	if event.Reversed {
		return nil, fmt.Errorf("event %s already undone: %w", eventID, domain.ErrConflict)
	}

	details, err := s.boxes.FindDetails(ctx, event.BoxID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up box: %w", err)
	}
	if details == nil {
		return nil, fmt.Errorf("box %s: %w", event.BoxID, domain.ErrNotFound)
	}

	var state *domain.InventoryState
	err = s.db.Transaction(ctx, func(tx pgx.Tx) error {
		txEvents := s.events.WithTx(tx)
		txStates := s.states.WithTx(tx)

		if err := txEvents.SetReversed(ctx, eventID, true); err != nil {
			return err
		}

		// An arbitrary historical event may have been removed, so the
		// projection must be rebuilt from scratch.
		refolded, err := s.projector.ProjectWith(ctx, txEvents, event.BoxID)
		if err != nil {
			return err
		}
		state = refolded

		return txStates.Upsert(ctx, state)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to undo event: %w", err)
	}

	s.invalidateCaches(ctx)

	var locationCode string
	if state.CurrentLocationID != nil {
		location, err := s.locations.FindByID(ctx, *state.CurrentLocationID)
		if err == nil && location != nil {
			locationCode = location.LocationCode
		}
	}

	s.logger.InfoContext(ctx, "undid event",
		slog.String("event_id", eventID.String()),
		slog.String("box_id", event.BoxID),
		slog.String("status", string(state.Status)))

	return &ports.UndoResult{
		Success:         true,
		Message:         msgEventUndone,
		BoxID:           event.BoxID,
		Product:         details.Product.DisplayName(),
		LotCode:         details.Box.LotCode,
		Status:          state.Status,
		CurrentLocation: locationCode,
	}, nil
}

// ListEvents returns ledger events matching the given filters
func (s *EventService) ListEvents(ctx context.Context, params ports.EventListParams) ([]domain.Event, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	events, err := s.events.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Reproject refolds a single box's projection inside a transaction
func (s *EventService) Reproject(ctx context.Context, boxID string) (*domain.InventoryState, error) {
	var state *domain.InventoryState
	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		refolded, err := s.projector.ProjectWith(ctx, s.events.WithTx(tx), boxID)
		if err != nil {
			return err
		}
		state = refolded
		return s.states.WithTx(tx).Upsert(ctx, state)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reproject box %s: %w", boxID, err)
	}
	return state, nil
}

// ReconcileStale refolds every box whose projection lags behind its latest
// ledger event. Projection writes share the append transaction, so this is
// a safety net rather than part of the normal path.
func (s *EventService) ReconcileStale(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = 100
	}

	boxIDs, err := s.events.StaleBoxIDs(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to find stale projections: %w", err)
	}

	repaired := 0
	for _, boxID := range boxIDs {
		if _, err := s.Reproject(ctx, boxID); err != nil {
			s.logger.ErrorContext(ctx, "failed to reconcile projection",
				slog.String("box_id", boxID),
				slog.String("error", err.Error()))
			continue
		}
		repaired++
	}

	if repaired > 0 {
		s.logger.InfoContext(ctx, msgStateReconciled,
			slog.Int("boxes", repaired))
	}

	return repaired, nil
}

func (s *EventService) duplicateResult(ctx context.Context, event *domain.Event) (*ports.EventResult, error) {
	result := &ports.EventResult{
		Success:       true,
		Message:       msgAlreadyDone,
		Warning:       event.Warning,
		ExceptionType: event.ExceptionType,
		IsDuplicate:   true,
		Changed:       false,
		EventID:       event.EventID,
		BoxID:         event.BoxID,
	}

	details, err := s.boxes.FindDetails(ctx, event.BoxID)
	if err == nil && details != nil {
		result.Product = details.Product.DisplayName()
		result.LotCode = details.Box.LotCode
	}

	return result, nil
}

func (s *EventService) invalidateCaches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "stats:today:*"); err != nil {
		s.logger.DebugContext(ctx, "failed to invalidate stats cache",
			slog.String("error", err.Error()))
	}
	if err := s.cache.DeletePattern(ctx, "inventory:list:*"); err != nil {
		s.logger.DebugContext(ctx, "failed to invalidate inventory cache",
			slog.String("error", err.Error()))
	}
}
