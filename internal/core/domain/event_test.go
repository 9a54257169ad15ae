package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
)

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		event     *domain.Event
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_inbound_event",
			event: &domain.Event{
				ClientEventID: "client-001",
				EventType:     domain.EventIn,
				BoxID:         "BX-20260315-000001",
				Mode:          domain.ModeInbound,
				SourceType:    domain.SourcePhone,
			},
			wantError: false,
		},
		{
			name: "missing_client_event_id",
			event: &domain.Event{
				EventType:  domain.EventIn,
				BoxID:      "BX-20260315-000001",
				Mode:       domain.ModeInbound,
				SourceType: domain.SourcePhone,
			},
			wantError: true,
			errorMsg:  "client_event_id is required",
		},
		{
			name: "missing_box_id",
			event: &domain.Event{
				ClientEventID: "client-001",
				EventType:     domain.EventIn,
				Mode:          domain.ModeInbound,
				SourceType:    domain.SourcePhone,
			},
			wantError: true,
			errorMsg:  "box_id is required",
		},
		{
			name: "unknown_event_type",
			event: &domain.Event{
				ClientEventID: "client-001",
				EventType:     "TRANSFER",
				BoxID:         "BX-20260315-000001",
				Mode:          domain.ModeInbound,
				SourceType:    domain.SourcePhone,
			},
			wantError: true,
			errorMsg:  "invalid event_type",
		},
		{
			name: "unknown_mode",
			event: &domain.Event{
				ClientEventID: "client-001",
				EventType:     domain.EventIn,
				BoxID:         "BX-20260315-000001",
				Mode:          "RECEIVE",
				SourceType:    domain.SourcePhone,
			},
			wantError: true,
			errorMsg:  "invalid mode",
		},
		{
			name: "unknown_source_type",
			event: &domain.Event{
				ClientEventID: "client-001",
				EventType:     domain.EventIn,
				BoxID:         "BX-20260315-000001",
				Mode:          domain.ModeInbound,
				SourceType:    "FORKLIFT",
			},
			wantError: true,
			errorMsg:  "invalid source_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()

			if tt.wantError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMode_Agrees(t *testing.T) {
	tests := []struct {
		name      string
		mode      domain.Mode
		eventType domain.EventType
		want      bool
	}{
		{"inbound_in", domain.ModeInbound, domain.EventIn, true},
		{"outbound_out", domain.ModeOutbound, domain.EventOut, true},
		{"move_move", domain.ModeMove, domain.EventMove, true},
		{"inbound_out", domain.ModeInbound, domain.EventOut, false},
		{"inbound_move", domain.ModeInbound, domain.EventMove, false},
		{"outbound_in", domain.ModeOutbound, domain.EventIn, false},
		{"outbound_move", domain.ModeOutbound, domain.EventMove, false},
		{"move_in", domain.ModeMove, domain.EventIn, false},
		{"move_out", domain.ModeMove, domain.EventOut, false},
		{"unknown_mode", domain.Mode("PICKING"), domain.EventIn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Agrees(tt.eventType))
		})
	}
}

func TestStripPrefixes(t *testing.T) {
	assert.Equal(t, "BX-20260315-000001", domain.StripBoxPrefix("BOX:BX-20260315-000001"))
	assert.Equal(t, "BX-20260315-000001", domain.StripBoxPrefix("BX-20260315-000001"))
	assert.Equal(t, "BX-20260315-000001", domain.StripBoxPrefix("  BOX:BX-20260315-000001  "))
	assert.Equal(t, "A1-2-3", domain.StripLocationPrefix("LOC:A1-2-3"))
	assert.Equal(t, "A1-2-3", domain.StripLocationPrefix("A1-2-3"))
	assert.Equal(t, "", domain.StripBoxPrefix("BOX:"))
}

func TestEvent_PrepareForStorage(t *testing.T) {
	t.Run("generates_id_and_timestamp", func(t *testing.T) {
		event := &domain.Event{
			ClientEventID: "client-001",
			EventType:     domain.EventIn,
			BoxID:         "BX-20260315-000001",
		}

		event.PrepareForStorage()

		assert.NotEqual(t, uuid.Nil, event.EventID)
		assert.False(t, event.Timestamp.IsZero())
	})

	t.Run("preserves_existing_id", func(t *testing.T) {
		existingID := uuid.New()
		event := &domain.Event{EventID: existingID}

		event.PrepareForStorage()

		assert.Equal(t, existingID, event.EventID)
	})
}

func BenchmarkEvent_Validate(b *testing.B) {
	event := &domain.Event{
		ClientEventID: "client-001",
		EventType:     domain.EventIn,
		BoxID:         "BX-20260315-000001",
		Mode:          domain.ModeInbound,
		SourceType:    domain.SourcePhone,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = event.Validate()
	}
}
