// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
	"github.com/jsalcedo/boxtrack-be/internal/pkg/config"
)

const TypeCleanupCounters = "cleanup:counters"

// CleanupProcessor handles periodic housekeeping tasks
type CleanupProcessor struct {
	counters ports.CounterRepository
	config   *config.Config
	logger   *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(counters ports.CounterRepository, config *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		counters: counters,
		config:   config,
		logger:   logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupCounters removes per-date box id counters past the retention
// window. Old counters are only needed while ids for that date can
// still be minted, so this is safe well after the fact.
func (p *CleanupProcessor) CleanupCounters(ctx context.Context, t *asynq.Task) error {
	retentionDays := p.config.Reconcile.CounterRetentionDays
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)

	p.logger.InfoContext(ctx, "cleaning up old box id counters",
		slog.Time("cutoff", cutoff))

	deleted, err := p.counters.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup counters: %w", err)
	}

	p.logger.InfoContext(ctx, "old counters cleaned up",
		slog.Int64("rows_deleted", deleted))

	return nil
}
