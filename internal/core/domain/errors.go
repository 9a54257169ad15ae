// internal/core/domain/errors.go
package domain

import "errors"

// Stable error kinds. Services wrap these with fmt.Errorf and %w so the
// HTTP boundary can classify failures with errors.Is instead of matching
// message text.
var (
	// ErrNotFound covers unknown boxes, locations, products and events.
	ErrNotFound = errors.New("not found")

	// ErrValidation covers hard rule failures; nothing is persisted.
	ErrValidation = errors.New("validation failed")

	// ErrConflict covers undo of an already-reversed event.
	ErrConflict = errors.New("conflict")

	// ErrDegraded marks operations that completed on a weaker fallback
	// path, e.g. a non-atomic counter increment.
	ErrDegraded = errors.New("degraded mode")
)
