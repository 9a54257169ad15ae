// internal/core/domain/event.go
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType represents the kind of scan recorded for a box
type EventType string

// Event type constants
const (
	EventIn   EventType = "IN"
	EventOut  EventType = "OUT"
	EventMove EventType = "MOVE"
)

// Mode represents the operator-facing workflow a scan was made in
type Mode string

// Mode constants
const (
	ModeInbound  Mode = "INBOUND"
	ModeOutbound Mode = "OUTBOUND"
	ModeMove     Mode = "MOVE"
)

// Agrees reports whether the mode and event type form a valid pairing.
// INBOUND carries IN, OUTBOUND carries OUT, MOVE carries MOVE.
func (m Mode) Agrees(t EventType) bool {
	switch m {
	case ModeInbound:
		return t == EventIn
	case ModeOutbound:
		return t == EventOut
	case ModeMove:
		return t == EventMove
	}
	return false
}

// SourceType identifies the device class that produced a scan
type SourceType string

// Source type constants
const (
	SourcePhone           SourceType = "PHONE"
	SourceInboundStation  SourceType = "INBOUND_STATION"
	SourceOutboundStation SourceType = "OUTBOUND_STATION"
	SourceAPI             SourceType = "API"
)

// ExceptionType tags an anomalous but accepted condition on an event
type ExceptionType string

// Exception tag constants
const (
	ExceptionOutWithoutIn ExceptionType = "OUT_WITHOUT_IN"
	ExceptionMoveWhenOut  ExceptionType = "MOVE_WHEN_OUT"
)

// QR payload prefixes emitted by the scanner apps
const (
	boxQRPrefix      = "BOX:"
	locationQRPrefix = "LOC:"
)

// StripBoxPrefix removes the scanner's BOX: prefix from a scanned value
func StripBoxPrefix(v string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), boxQRPrefix))
}

// StripLocationPrefix removes the scanner's LOC: prefix from a scanned value
func StripLocationPrefix(v string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v), locationQRPrefix))
}

// Event is an append-only scan fact. Rows are never updated after insert
// except to flip Reversed, and never physically deleted.
type Event struct {
	EventID       uuid.UUID      `json:"event_id"`
	EventSeq      int64          `json:"-"`
	ClientEventID string         `json:"client_event_id"`
	EventType     EventType      `json:"event_type"`
	BoxID         string         `json:"box_id"`
	LocationID    *uuid.UUID     `json:"location_id,omitempty"`
	Mode          Mode           `json:"mode"`
	SourceType    SourceType     `json:"source_type"`
	SourceID      string         `json:"source_id,omitempty"`
	ExceptionType *ExceptionType `json:"exception_type,omitempty"`
	Warning       string         `json:"warning,omitempty"`
	Reversed      bool           `json:"reversed"`
	Timestamp     time.Time      `json:"timestamp"`
}

// Validate performs domain validation on the event
func (e *Event) Validate() error {
	if e.ClientEventID == "" {
		return fmt.Errorf("client_event_id is required")
	}
	if e.BoxID == "" {
		return fmt.Errorf("box_id is required")
	}
	switch e.EventType {
	case EventIn, EventOut, EventMove:
	default:
		return fmt.Errorf("invalid event_type: %s", e.EventType)
	}
	switch e.Mode {
	case ModeInbound, ModeOutbound, ModeMove:
	default:
		return fmt.Errorf("invalid mode: %s", e.Mode)
	}
	switch e.SourceType {
	case SourcePhone, SourceInboundStation, SourceOutboundStation, SourceAPI:
	default:
		return fmt.Errorf("invalid source_type: %s", e.SourceType)
	}
	return nil
}

// PrepareForStorage assigns the system id and append timestamp
func (e *Event) PrepareForStorage() {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
}
