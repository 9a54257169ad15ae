package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
	"github.com/jsalcedo/boxtrack-be/internal/core/services"
	"github.com/jsalcedo/boxtrack-be/test/helpers"
	"github.com/jsalcedo/boxtrack-be/test/mocks"
)

type eventServiceMocks struct {
	db        *mocks.MockDatabase
	events    *mocks.MockEventRepository
	states    *mocks.MockStateRepository
	boxes     *mocks.MockBoxRepository
	locations *mocks.MockLocationRepository
	rules     *mocks.MockRulesEngine
	resolver  *mocks.MockLocationResolver
	cache     *mocks.MockCacheRepository
}

func newEventService(ctrl *gomock.Controller) (*services.EventService, *eventServiceMocks) {
	m := &eventServiceMocks{
		db:        mocks.NewMockDatabase(ctrl),
		events:    mocks.NewMockEventRepository(ctrl),
		states:    mocks.NewMockStateRepository(ctrl),
		boxes:     mocks.NewMockBoxRepository(ctrl),
		locations: mocks.NewMockLocationRepository(ctrl),
		rules:     mocks.NewMockRulesEngine(ctrl),
		resolver:  mocks.NewMockLocationResolver(ctrl),
		cache:     mocks.NewMockCacheRepository(ctrl),
	}

	// Repositories pass through WithTx so transactional calls land on the
	// same mock; Transaction just runs the closure.
	m.events.EXPECT().WithTx(gomock.Any()).Return(m.events).AnyTimes()
	m.states.EXPECT().WithTx(gomock.Any()).Return(m.states).AnyTimes()
	m.cache.EXPECT().DeletePattern(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	logger := helpers.TestLogger()
	projector := services.NewProjector(m.events, logger)
	svc := services.NewEventService(
		m.db, m.events, m.states, m.boxes, m.locations,
		m.rules, m.resolver, projector, m.cache, logger,
	)
	return svc, m
}

func expectTransaction(m *eventServiceMocks) {
	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		})
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	boxID := details.Box.BoxID
	receivingID := uuid.New()

	m.events.EXPECT().FindByClientEventID(gomock.Any(), "client-001").Return(nil, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil)
	m.resolver.EXPECT().ReceivingID(gomock.Any()).Return(receivingID, true, nil)
	m.rules.EXPECT().
		Validate(gomock.Any(), domain.ModeInbound, domain.EventIn, boxID, gomock.Any()).
		Return(nil, "", nil)

	expectTransaction(m)
	var inserted *domain.Event
	m.events.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *domain.Event) error {
			inserted = e
			return nil
		})
	m.states.EXPECT().FindByBox(gomock.Any(), boxID).Return(nil, nil)
	var upserted *domain.InventoryState
	m.states.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *domain.InventoryState) error {
			upserted = s
			return nil
		})

	result, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-001",
		EventType:     domain.EventIn,
		BoxID:         "BOX:" + boxID,
		Mode:          domain.ModeInbound,
		SourceType:    domain.SourcePhone,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Event created successfully", result.Message)
	assert.False(t, result.IsDuplicate)
	assert.True(t, result.Changed)
	assert.Equal(t, boxID, result.BoxID)

	// The un-located IN scan fell back to RECEIVING.
	require.NotNil(t, inserted)
	require.NotNil(t, inserted.LocationID)
	assert.Equal(t, receivingID, *inserted.LocationID)

	// The projection upsert ran in the same transaction and reflects the event.
	require.NotNil(t, upserted)
	assert.Equal(t, domain.StatusInStock, upserted.Status)
	require.NotNil(t, upserted.CurrentLocationID)
	assert.Equal(t, receivingID, *upserted.CurrentLocationID)
}

func TestEventService_CreateEvent_DuplicateIsInert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	stored := helpers.CreateTestEvent(func(e *domain.Event) {
		e.ClientEventID = "client-001"
		e.BoxID = details.Box.BoxID
	})

	// No box lookup before the duplicate check errors out; no rules, no
	// resolution, no transaction.
	m.events.EXPECT().FindByClientEventID(gomock.Any(), "client-001").Return(stored, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), stored.BoxID).Return(details, nil)

	result, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-001",
		EventType:     domain.EventOut, // differing payload must not matter
		BoxID:         stored.BoxID,
		Mode:          domain.ModeOutbound,
		SourceType:    domain.SourceAPI,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.IsDuplicate)
	assert.False(t, result.Changed)
	assert.Equal(t, "Event already processed", result.Message)
	assert.Equal(t, stored.EventID, result.EventID)
}

func TestEventService_CreateEvent_BoxNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)

	m.events.EXPECT().FindByClientEventID(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), "BX-20260315-000099").Return(nil, nil)

	_, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-002",
		EventType:     domain.EventIn,
		BoxID:         "BX-20260315-000099",
		Mode:          domain.ModeInbound,
		SourceType:    domain.SourcePhone,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_CreateEvent_RejectedMovePersistsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	boxID := details.Box.BoxID
	destination := uuid.New()
	tag := domain.ExceptionMoveWhenOut

	m.events.EXPECT().FindByClientEventID(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "A1-2-3").Return(destination, nil)
	m.rules.EXPECT().
		Validate(gomock.Any(), domain.ModeMove, domain.EventMove, boxID, gomock.Any()).
		Return(&tag, "", errors.Join(domain.ErrValidation, errors.New("cannot move box that is out of warehouse")))

	// No Insert, no Upsert, no Transaction.
	_, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-003",
		EventType:     domain.EventMove,
		BoxID:         boxID,
		LocationCode:  "A1-2-3",
		Mode:          domain.ModeMove,
		SourceType:    domain.SourcePhone,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_SoftExceptionIsPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	boxID := details.Box.BoxID
	tag := domain.ExceptionOutWithoutIn
	warning := "Box was never received (no IN event found)"

	m.events.EXPECT().FindByClientEventID(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil)
	m.rules.EXPECT().
		Validate(gomock.Any(), domain.ModeOutbound, domain.EventOut, boxID, gomock.Any()).
		Return(&tag, warning, nil)

	expectTransaction(m)
	var inserted *domain.Event
	m.events.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *domain.Event) error {
			inserted = e
			return nil
		})
	m.states.EXPECT().FindByBox(gomock.Any(), boxID).Return(nil, nil)
	m.states.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *domain.InventoryState) error {
			assert.Equal(t, domain.StatusOutOfWarehouse, s.Status)
			assert.Nil(t, s.CurrentLocationID)
			return nil
		})

	result, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-004",
		EventType:     domain.EventOut,
		BoxID:         boxID,
		Mode:          domain.ModeOutbound,
		SourceType:    domain.SourceOutboundStation,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.ExceptionType)
	assert.Equal(t, domain.ExceptionOutWithoutIn, *result.ExceptionType)
	assert.Equal(t, warning, result.Warning)

	require.NotNil(t, inserted)
	require.NotNil(t, inserted.ExceptionType)
	assert.Equal(t, domain.ExceptionOutWithoutIn, *inserted.ExceptionType)
	assert.Equal(t, warning, inserted.Warning)
}

func TestEventService_CreateEvent_MoveToCurrentLocationNotChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	boxID := details.Box.BoxID
	destination := uuid.New()

	m.events.EXPECT().FindByClientEventID(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), "A1-2-3").Return(destination, nil)
	m.rules.EXPECT().
		Validate(gomock.Any(), domain.ModeMove, domain.EventMove, boxID, gomock.Any()).
		Return(nil, "", nil)

	current := helpers.CreateTestState(func(s *domain.InventoryState) {
		s.BoxID = boxID
		s.CurrentLocationID = &destination
	})
	// Once outside the transaction for the changed check, once inside for
	// the projection update.
	m.states.EXPECT().FindByBox(gomock.Any(), boxID).Return(current, nil).Times(2)

	expectTransaction(m)
	m.events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	m.states.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-005",
		EventType:     domain.EventMove,
		BoxID:         boxID,
		LocationCode:  "LOC:A1-2-3",
		Mode:          domain.ModeMove,
		SourceType:    domain.SourcePhone,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Changed)
	assert.Equal(t, "Box already at this location", result.Message)
}

func TestEventService_CreateEvent_UniqueViolationReturnsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	boxID := details.Box.BoxID
	stored := helpers.CreateTestEvent(func(e *domain.Event) {
		e.ClientEventID = "client-006"
		e.BoxID = boxID
	})

	gomock.InOrder(
		m.events.EXPECT().FindByClientEventID(gomock.Any(), "client-006").Return(nil, nil),
		m.events.EXPECT().FindByClientEventID(gomock.Any(), "client-006").Return(stored, nil),
	)
	m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil).Times(2)
	m.resolver.EXPECT().ReceivingID(gomock.Any()).Return(uuid.New(), true, nil)
	m.rules.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", nil)

	// A concurrent retry won the insert race inside the transaction.
	m.db.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "events_client_event_id_key"})

	result, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-006",
		EventType:     domain.EventIn,
		BoxID:         boxID,
		Mode:          domain.ModeInbound,
		SourceType:    domain.SourcePhone,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.IsDuplicate)
	assert.Equal(t, stored.EventID, result.EventID)
}

func TestEventService_CreateEvent_ProjectionFailureAbortsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	details := helpers.CreateTestBoxDetails()
	boxID := details.Box.BoxID

	m.events.EXPECT().FindByClientEventID(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil)
	m.resolver.EXPECT().ReceivingID(gomock.Any()).Return(uuid.New(), true, nil)
	m.rules.EXPECT().
		Validate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "", nil)

	expectTransaction(m)
	m.events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	m.states.EXPECT().FindByBox(gomock.Any(), boxID).Return(nil, nil)
	m.states.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("upsert failed"))

	_, err := svc.CreateEvent(context.Background(), ports.CreateEventParams{
		ClientEventID: "client-007",
		EventType:     domain.EventIn,
		BoxID:         boxID,
		Mode:          domain.ModeInbound,
		SourceType:    domain.SourcePhone,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append event")
}

func TestEventService_UndoEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("not_found", func(t *testing.T) {
		svc, m := newEventService(ctrl)
		eventID := uuid.New()
		m.events.EXPECT().FindByID(gomock.Any(), eventID).Return(nil, nil)

		_, err := svc.UndoEvent(context.Background(), eventID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("already_reversed_conflicts", func(t *testing.T) {
		svc, m := newEventService(ctrl)
		stored := helpers.CreateTestEvent(func(e *domain.Event) { e.Reversed = true })
		m.events.EXPECT().FindByID(gomock.Any(), stored.EventID).Return(stored, nil)

		_, err := svc.UndoEvent(context.Background(), stored.EventID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("undo_only_event_empties_projection", func(t *testing.T) {
		svc, m := newEventService(ctrl)
		details := helpers.CreateTestBoxDetails()
		stored := helpers.CreateTestEvent(func(e *domain.Event) {
			e.BoxID = details.Box.BoxID
		})

		m.events.EXPECT().FindByID(gomock.Any(), stored.EventID).Return(stored, nil)
		m.boxes.EXPECT().FindDetails(gomock.Any(), stored.BoxID).Return(details, nil)

		expectTransaction(m)
		m.events.EXPECT().SetReversed(gomock.Any(), stored.EventID, true).Return(nil)

		// The refold sees the event already flagged reversed.
		flagged := *stored
		flagged.Reversed = true
		m.events.EXPECT().FindByBox(gomock.Any(), stored.BoxID).Return([]domain.Event{flagged}, nil)

		m.states.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *domain.InventoryState) error {
				assert.Equal(t, domain.StatusOutOfWarehouse, s.Status)
				assert.Nil(t, s.CurrentLocationID)
				assert.Nil(t, s.LastEventTime)
				return nil
			})

		result, err := svc.UndoEvent(context.Background(), stored.EventID)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Event undone successfully", result.Message)
		assert.Equal(t, domain.StatusOutOfWarehouse, result.Status)
		assert.Empty(t, result.CurrentLocation)
	})

	t.Run("undo_mid_history_refolds_fully", func(t *testing.T) {
		svc, m := newEventService(ctrl)
		details := helpers.CreateTestBoxDetails()
		boxID := details.Box.BoxID
		locA := uuid.New()
		locB := uuid.New()
		base := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

		in := helpers.CreateTestEvent(func(e *domain.Event) {
			e.BoxID, e.EventType, e.LocationID, e.Timestamp, e.EventSeq = boxID, domain.EventIn, &locA, base, 1
		})
		move := helpers.CreateTestEvent(func(e *domain.Event) {
			e.BoxID, e.EventType, e.LocationID, e.Timestamp, e.EventSeq = boxID, domain.EventMove, &locB, base.Add(time.Minute), 2
		})
		out := helpers.CreateTestEvent(func(e *domain.Event) {
			e.BoxID, e.EventType, e.Timestamp, e.EventSeq = boxID, domain.EventOut, base.Add(2*time.Minute), 3
		})

		m.events.EXPECT().FindByID(gomock.Any(), move.EventID).Return(move, nil)
		m.boxes.EXPECT().FindDetails(gomock.Any(), boxID).Return(details, nil)

		expectTransaction(m)
		m.events.EXPECT().SetReversed(gomock.Any(), move.EventID, true).Return(nil)

		reversedMove := *move
		reversedMove.Reversed = true
		m.events.EXPECT().
			FindByBox(gomock.Any(), boxID).
			Return([]domain.Event{*in, reversedMove, *out}, nil)

		m.states.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *domain.InventoryState) error {
				// The fold over {IN, OUT} is unaffected by the removed MOVE.
				assert.Equal(t, domain.StatusOutOfWarehouse, s.Status)
				assert.Nil(t, s.CurrentLocationID)
				require.NotNil(t, s.LastEventType)
				assert.Equal(t, domain.EventOut, *s.LastEventType)
				return nil
			})

		result, err := svc.UndoEvent(context.Background(), move.EventID)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusOutOfWarehouse, result.Status)
	})
}

func TestEventService_ReconcileStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newEventService(ctrl)
	locA := uuid.New()
	stale := []string{"BX-20260315-000001", "BX-20260315-000002"}

	m.events.EXPECT().StaleBoxIDs(gomock.Any(), 100).Return(stale, nil)
	for _, boxID := range stale {
		id := boxID
		m.db.EXPECT().
			Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
				return fn(nil)
			})
		m.events.EXPECT().
			FindByBox(gomock.Any(), id).
			Return([]domain.Event{
				*helpers.CreateTestEvent(func(e *domain.Event) {
					e.BoxID, e.LocationID = id, &locA
				}),
			}, nil)
		m.states.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	}

	repaired, err := svc.ReconcileStale(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 2, repaired)
}
