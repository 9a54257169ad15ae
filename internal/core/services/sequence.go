// internal/core/services/sequence.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// SequenceService allocates per-date box identifiers. The atomic counter
// upsert is the normal path; when storage refuses it the service degrades
// to a read-increment-write cycle, which can hand out duplicates under
// true concurrency and is therefore always logged.
type SequenceService struct {
	counters ports.CounterRepository
	logger   *slog.Logger
}

// Statically assert that *SequenceService implements the SequenceAllocator interface.
var _ ports.SequenceAllocator = (*SequenceService)(nil)

// NewSequenceService creates a new sequence allocator
func NewSequenceService(counters ports.CounterRepository, logger *slog.Logger) *SequenceService {
	return &SequenceService{
		counters: counters,
		logger:   logger.With(slog.String("service", "sequence")),
	}
}

// AllocateBoxID returns the next BX-YYYYMMDD-NNNNNN identifier for date
func (s *SequenceService) AllocateBoxID(ctx context.Context, date time.Time) (string, error) {
	seq, err := s.counters.NextSequence(ctx, date)
	if err == nil {
		return domain.FormatBoxID(date, seq), nil
	}
	if ctx.Err() != nil {
		return "", fmt.Errorf("failed to allocate box sequence: %w", err)
	}

	s.logger.WarnContext(ctx, "atomic counter increment unavailable, using read-increment-write fallback",
		slog.String("date", date.Format("2006-01-02")),
		slog.String("error", err.Error()))

	seq, err = s.counters.NextSequenceFallback(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to allocate box sequence: %w", err)
	}

	s.logger.WarnContext(ctx, "allocated box sequence in degraded mode",
		slog.String("date", date.Format("2006-01-02")),
		slog.Int("sequence", seq))

	return domain.FormatBoxID(date, seq), nil
}
