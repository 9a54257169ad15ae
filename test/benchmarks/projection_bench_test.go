package benchmarks

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
	"github.com/jsalcedo/boxtrack-be/test/helpers"
)

// buildHistory creates an alternating IN/MOVE/OUT ledger for one box
func buildHistory(boxID string, n int) []domain.Event {
	base := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	locationID := uuid.New()

	events := make([]domain.Event, 0, n)
	for i := 0; i < n; i++ {
		e := *helpers.CreateTestEvent(func(e *domain.Event) {
			e.BoxID = boxID
			e.EventSeq = int64(i + 1)
			e.Timestamp = base.Add(time.Duration(i) * time.Minute)
			e.LocationID = &locationID
		})
		switch i % 3 {
		case 1:
			e.EventType = domain.EventMove
			e.Mode = domain.ModeMove
		case 2:
			e.EventType = domain.EventOut
			e.Mode = domain.ModeOutbound
			e.LocationID = nil
		}
		events = append(events, e)
	}
	return events
}

func BenchmarkFoldEvents(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("history_%d", size), func(b *testing.B) {
			events := buildHistory("BX-20260315-000001", size)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = domain.FoldEvents("BX-20260315-000001", events)
			}
		})
	}
}

func BenchmarkFormatBoxID(b *testing.B) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = domain.FormatBoxID(date, i%999999+1)
	}
}

func BenchmarkValidBoxID(b *testing.B) {
	ids := []string{
		"BX-20260315-000001",
		"BX-20260315-999999",
		"not-a-box-id",
		"BX-2026315-000001",
	}
	for i := 0; i < b.N; i++ {
		_ = domain.ValidBoxID(ids[i%len(ids)])
	}
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("Event", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = &domain.Event{
				EventID:       uuid.New(),
				ClientEventID: "bench-001",
				EventType:     domain.EventIn,
				BoxID:         "BX-20260315-000001",
				Mode:          domain.ModeInbound,
				SourceType:    domain.SourcePhone,
				Timestamp:     time.Now().UTC(),
			}
		}
	})

	b.Run("InventoryListResult", func(b *testing.B) {
		items := make([]ports.InventoryRow, 100)
		for i := range items {
			items[i] = ports.InventoryRow{
				BoxID:   domain.FormatBoxID(time.Now().UTC(), i+1),
				Product: "Acme Widget (M)",
				Status:  domain.StatusInStock,
			}
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = &ports.InventoryListResult{
				Items:      items,
				Page:       1,
				PageSize:   50,
				TotalCount: 100,
				TotalPages: 2,
			}
		}
	})
}
