// internal/core/services/stats.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

const statsCacheTTL = 30 * time.Second

// StatsService aggregates today's scan activity for the floor dashboard.
// Results are cached briefly; event writes invalidate the cache.
type StatsService struct {
	events   ports.EventRepository
	states   ports.StateRepository
	resolver ports.LocationResolver
	cache    ports.CacheRepository
	logger   *slog.Logger
}

// Statically assert that *StatsService implements the StatsService interface.
var _ ports.StatsService = (*StatsService)(nil)

// NewStatsService creates a new stats service
func NewStatsService(
	events ports.EventRepository,
	states ports.StateRepository,
	resolver ports.LocationResolver,
	cache ports.CacheRepository,
	logger *slog.Logger,
) *StatsService {
	return &StatsService{
		events:   events,
		states:   states,
		resolver: resolver,
		cache:    cache,
		logger:   logger.With(slog.String("service", "stats")),
	}
}

// Today returns counters for the current UTC date
func (s *StatsService) Today(ctx context.Context) (*ports.TodayStats, error) {
	key := fmt.Sprintf("stats:today:%s", time.Now().UTC().Format("20060102"))

	if s.cache != nil {
		var stats ports.TodayStats
		err := s.cache.GetOrSet(ctx, key, &stats, func() (interface{}, error) {
			return s.compute(ctx)
		}, statsCacheTTL)
		if err == nil {
			return &stats, nil
		}
		s.logger.DebugContext(ctx, "stats cache unavailable, computing directly",
			slog.String("error", err.Error()))
	}

	return s.compute(ctx)
}

func (s *StatsService) compute(ctx context.Context) (*ports.TodayStats, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts, err := s.events.CountByTypeSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	exceptions, err := s.events.CountExceptionsSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("failed to count exceptions: %w", err)
	}

	stats := &ports.TodayStats{
		Received:   counts[domain.EventIn],
		Moved:      counts[domain.EventMove],
		Shipped:    counts[domain.EventOut],
		Exceptions: exceptions,
	}

	receivingID, ok, err := s.resolver.ReceivingID(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		toPutAway, err := s.states.CountAtLocation(ctx, receivingID)
		if err != nil {
			return nil, fmt.Errorf("failed to count boxes waiting putaway: %w", err)
		}
		stats.ToPutAway = toPutAway

		waiting, err := s.states.FindAtLocation(ctx, receivingID, 10)
		if err != nil {
			return nil, fmt.Errorf("failed to list boxes waiting putaway: %w", err)
		}
		stats.WaitingPutaway = waiting
	}

	return stats, nil
}
