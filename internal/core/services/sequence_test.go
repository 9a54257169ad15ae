package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jsalcedo/boxtrack-be/internal/core/services"
	"github.com/jsalcedo/boxtrack-be/test/helpers"
	"github.com/jsalcedo/boxtrack-be/test/mocks"
)

func TestSequenceService_AllocateBoxID(t *testing.T) {
	date := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("atomic_path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counters := mocks.NewMockCounterRepository(ctrl)
		counters.EXPECT().NextSequence(gomock.Any(), date).Return(42, nil)

		svc := services.NewSequenceService(counters, helpers.TestLogger())

		boxID, err := svc.AllocateBoxID(context.Background(), date)

		require.NoError(t, err)
		assert.Equal(t, "BX-20260315-000042", boxID)
	})

	t.Run("falls_back_when_atomic_unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counters := mocks.NewMockCounterRepository(ctrl)
		counters.EXPECT().NextSequence(gomock.Any(), date).Return(0, errors.New("upsert not supported"))
		counters.EXPECT().NextSequenceFallback(gomock.Any(), date).Return(7, nil)

		svc := services.NewSequenceService(counters, helpers.TestLogger())

		boxID, err := svc.AllocateBoxID(context.Background(), date)

		require.NoError(t, err)
		assert.Equal(t, "BX-20260315-000007", boxID)
	})

	t.Run("fails_when_both_paths_fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		counters := mocks.NewMockCounterRepository(ctrl)
		counters.EXPECT().NextSequence(gomock.Any(), date).Return(0, errors.New("down"))
		counters.EXPECT().NextSequenceFallback(gomock.Any(), date).Return(0, errors.New("still down"))

		svc := services.NewSequenceService(counters, helpers.TestLogger())

		_, err := svc.AllocateBoxID(context.Background(), date)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to allocate box sequence")
	})

	t.Run("concurrent_allocations_are_distinct", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var counter int64
		counters := mocks.NewMockCounterRepository(ctrl)
		counters.EXPECT().
			NextSequence(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, d time.Time) (int, error) {
				return int(atomic.AddInt64(&counter, 1)), nil
			}).
			Times(50)

		svc := services.NewSequenceService(counters, helpers.TestLogger())

		var wg sync.WaitGroup
		results := make(chan string, 50)
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				boxID, err := svc.AllocateBoxID(context.Background(), date)
				assert.NoError(t, err)
				results <- boxID
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[string]bool)
		for boxID := range results {
			assert.False(t, seen[boxID], "duplicate box id %s", boxID)
			seen[boxID] = true
		}
		assert.Len(t, seen, 50)
	})
}
