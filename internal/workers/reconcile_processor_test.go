// internal/workers/reconcile_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/pkg/config"
	"github.com/jsalcedo/boxtrack-be/internal/workers"
	"github.com/jsalcedo/boxtrack-be/test/helpers"
	"github.com/jsalcedo/boxtrack-be/test/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Reconcile: config.ReconcileConfig{
			BatchLimit:           50,
			CounterRetentionDays: 90,
		},
	}
}

func TestReconcileProcessor_ReconcileStale(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockEventService)
		wantErr    bool
	}{
		{
			name: "repairs_stale_projections",
			setupMocks: func(m *mocks.MockEventService) {
				m.EXPECT().
					ReconcileStale(gomock.Any(), 50).
					Return(3, nil)
			},
		},
		{
			name: "nothing_to_repair",
			setupMocks: func(m *mocks.MockEventService) {
				m.EXPECT().
					ReconcileStale(gomock.Any(), 50).
					Return(0, nil)
			},
		},
		{
			name: "propagates_service_error",
			setupMocks: func(m *mocks.MockEventService) {
				m.EXPECT().
					ReconcileStale(gomock.Any(), 50).
					Return(0, errors.New("database connection failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockEventService(ctrl)
			tt.setupMocks(mockService)

			processor := workers.NewReconcileProcessor(mockService, testConfig(), helpers.TestLogger())

			task := asynq.NewTask(workers.TypeReconcileStale, nil)
			err := processor.ReconcileStale(context.Background(), task)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReconcileProcessor_ReprojectBox(t *testing.T) {
	boxID := "BX-20260315-000001"

	t.Run("reprojects_box", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockEventService(ctrl)
		mockService.EXPECT().
			Reproject(gomock.Any(), boxID).
			Return(&domain.InventoryState{BoxID: boxID, Status: domain.StatusInStock}, nil)

		processor := workers.NewReconcileProcessor(mockService, testConfig(), helpers.TestLogger())

		task, err := workers.NewReprojectBoxTask(boxID)
		require.NoError(t, err)

		assert.NoError(t, processor.ReprojectBox(context.Background(), task))
	})

	t.Run("rejects_empty_box_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockEventService(ctrl)
		processor := workers.NewReconcileProcessor(mockService, testConfig(), helpers.TestLogger())

		payload, _ := json.Marshal(workers.ReprojectBoxPayload{})
		task := asynq.NewTask(workers.TypeReprojectBox, payload)

		assert.Error(t, processor.ReprojectBox(context.Background(), task))
	})

	t.Run("rejects_malformed_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockEventService(ctrl)
		processor := workers.NewReconcileProcessor(mockService, testConfig(), helpers.TestLogger())

		task := asynq.NewTask(workers.TypeReprojectBox, []byte("{not json"))

		assert.Error(t, processor.ReprojectBox(context.Background(), task))
	})
}

func TestCleanupProcessor_CleanupCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCounters := mocks.NewMockCounterRepository(ctrl)
	mockCounters.EXPECT().
		DeleteOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, cutoff time.Time) (int64, error) {
			// 90 day retention puts the cutoff roughly 90 days back
			assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -90), cutoff, time.Minute)
			return 4, nil
		})

	processor := workers.NewCleanupProcessor(mockCounters, testConfig(), helpers.TestLogger())

	task := asynq.NewTask(workers.TypeCleanupCounters, nil)
	assert.NoError(t, processor.CleanupCounters(context.Background(), task))
}
