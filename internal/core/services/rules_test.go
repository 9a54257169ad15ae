package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/services"
	"github.com/jsalcedo/boxtrack-be/test/helpers"
	"github.com/jsalcedo/boxtrack-be/test/mocks"
)

func TestRulesEngine_Validate(t *testing.T) {
	boxID := "BX-20260315-000001"
	locationID := uuid.New()

	tests := []struct {
		name           string
		mode           domain.Mode
		eventType      domain.EventType
		locationID     *uuid.UUID
		setupMocks     func(events *mocks.MockEventRepository, states *mocks.MockStateRepository)
		wantTag        *domain.ExceptionType
		wantWarning    string
		expectedError  bool
		wantValidation bool
		errorContains  string
	}{
		{
			name:           "mode_type_mismatch_rejected",
			mode:           domain.ModeInbound,
			eventType:      domain.EventOut,
			locationID:     nil,
			setupMocks:     func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {},
			expectedError:  true,
			wantValidation: true,
			errorContains:  "does not allow",
		},
		{
			name:           "move_without_destination_rejected",
			mode:           domain.ModeMove,
			eventType:      domain.EventMove,
			locationID:     nil,
			setupMocks:     func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {},
			expectedError:  true,
			wantValidation: true,
			errorContains:  "requires a destination",
		},
		{
			name:       "move_of_out_of_warehouse_box_rejected",
			mode:       domain.ModeMove,
			eventType:  domain.EventMove,
			locationID: &locationID,
			setupMocks: func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {
				state := helpers.CreateTestState(func(s *domain.InventoryState) {
					s.Status = domain.StatusOutOfWarehouse
					s.CurrentLocationID = nil
				})
				states.EXPECT().FindByBox(gomock.Any(), boxID).Return(state, nil)
			},
			wantTag:        exceptionPtr(domain.ExceptionMoveWhenOut),
			expectedError:  true,
			wantValidation: true,
			errorContains:  "out of warehouse",
		},
		{
			name:       "move_of_unknown_box_rejected",
			mode:       domain.ModeMove,
			eventType:  domain.EventMove,
			locationID: &locationID,
			setupMocks: func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {
				states.EXPECT().FindByBox(gomock.Any(), boxID).Return(nil, nil)
			},
			wantTag:        exceptionPtr(domain.ExceptionMoveWhenOut),
			expectedError:  true,
			wantValidation: true,
			errorContains:  "out of warehouse",
		},
		{
			name:       "move_of_in_stock_box_accepted",
			mode:       domain.ModeMove,
			eventType:  domain.EventMove,
			locationID: &locationID,
			setupMocks: func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {
				states.EXPECT().FindByBox(gomock.Any(), boxID).Return(helpers.CreateTestState(), nil)
			},
			expectedError: false,
		},
		{
			name:       "out_without_prior_in_tagged",
			mode:       domain.ModeOutbound,
			eventType:  domain.EventOut,
			locationID: nil,
			setupMocks: func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {
				events.EXPECT().HasInEvent(gomock.Any(), boxID).Return(false, nil)
			},
			wantTag:       exceptionPtr(domain.ExceptionOutWithoutIn),
			wantWarning:   "Box was never received (no IN event found)",
			expectedError: false,
		},
		{
			name:       "out_with_prior_in_accepted",
			mode:       domain.ModeOutbound,
			eventType:  domain.EventOut,
			locationID: nil,
			setupMocks: func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {
				events.EXPECT().HasInEvent(gomock.Any(), boxID).Return(true, nil)
			},
			expectedError: false,
		},
		{
			name:          "inbound_in_accepted_without_lookups",
			mode:          domain.ModeInbound,
			eventType:     domain.EventIn,
			locationID:    &locationID,
			setupMocks:    func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {},
			expectedError: false,
		},
		{
			name:       "state_lookup_failure_propagates",
			mode:       domain.ModeMove,
			eventType:  domain.EventMove,
			locationID: &locationID,
			setupMocks: func(events *mocks.MockEventRepository, states *mocks.MockStateRepository) {
				states.EXPECT().FindByBox(gomock.Any(), boxID).Return(nil, errors.New("connection refused"))
			},
			expectedError: true,
			errorContains: "failed to load box state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEvents := mocks.NewMockEventRepository(ctrl)
			mockStates := mocks.NewMockStateRepository(ctrl)
			tt.setupMocks(mockEvents, mockStates)

			engine := services.NewRulesEngine(mockEvents, mockStates, helpers.TestLogger())

			tag, warning, err := engine.Validate(context.Background(), tt.mode, tt.eventType, boxID, tt.locationID)

			if tt.expectedError {
				require.Error(t, err)
				if tt.wantValidation {
					assert.ErrorIs(t, err, domain.ErrValidation)
				}
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
			}

			if tt.wantTag != nil {
				require.NotNil(t, tag)
				assert.Equal(t, *tt.wantTag, *tag)
			} else if !tt.expectedError {
				assert.Nil(t, tag)
			}
			assert.Equal(t, tt.wantWarning, warning)
		})
	}
}

func TestRulesEngine_Validate_StateLookupErrorIsNotValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockStates := mocks.NewMockStateRepository(ctrl)
	mockEvents.EXPECT().HasInEvent(gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

	engine := services.NewRulesEngine(mockEvents, mockStates, helpers.TestLogger())

	_, _, err := engine.Validate(context.Background(), domain.ModeOutbound, domain.EventOut, "BX-20260315-000001", nil)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrValidation))
}

func exceptionPtr(t domain.ExceptionType) *domain.ExceptionType {
	return &t
}
