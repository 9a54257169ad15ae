// internal/core/domain/state.go
package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// BoxStatus represents a box's projected presence in the warehouse
type BoxStatus string

// Status constants
const (
	StatusInStock        BoxStatus = "IN_STOCK"
	StatusOutOfWarehouse BoxStatus = "OUT_OF_WAREHOUSE"
)

// InventoryState is the derived current-state row for a box. It must always
// equal FoldEvents over the box's non-reversed events; only the event service
// writes it.
type InventoryState struct {
	BoxID             string     `json:"box_id"`
	Status            BoxStatus  `json:"status"`
	CurrentLocationID *uuid.UUID `json:"current_location_id,omitempty"`
	LastEventTime     *time.Time `json:"last_event_time,omitempty"`
	LastEventType     *EventType `json:"last_event_type,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// EmptyState is the projection of a box with no surviving events:
// out of warehouse, no location, no last-event fields.
func EmptyState(boxID string) InventoryState {
	return InventoryState{
		BoxID:  boxID,
		Status: StatusOutOfWarehouse,
	}
}

// FoldEvents computes a box's state from its events. Events are ordered by
// timestamp ascending with insertion order (EventSeq) breaking ties, since
// timestamps can collide under concurrent writers. Reversed events are
// skipped, so callers may pass unfiltered history.
func FoldEvents(boxID string, events []Event) InventoryState {
	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Timestamp.Equal(ordered[j].Timestamp) {
			return ordered[i].EventSeq < ordered[j].EventSeq
		}
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	state := EmptyState(boxID)
	for _, e := range ordered {
		if e.Reversed {
			continue
		}
		state = ApplyEvent(state, e)
	}
	return state
}

// ApplyEvent advances a state by a single event. For an ordinary append the
// new event is always the newest, so applying it to the stored state yields
// the same result as a full refold; undo paths must refold instead.
func ApplyEvent(state InventoryState, e Event) InventoryState {
	switch e.EventType {
	case EventIn, EventMove:
		state.Status = StatusInStock
		state.CurrentLocationID = e.LocationID
	case EventOut:
		state.Status = StatusOutOfWarehouse
		state.CurrentLocationID = nil
	}
	ts := e.Timestamp
	et := e.EventType
	state.LastEventTime = &ts
	state.LastEventType = &et
	return state
}
