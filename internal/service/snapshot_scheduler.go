package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const snapshotRunTimeout = 10 * time.Minute

// SnapshotScheduler snapshots the previous calendar month on a cron schedule.
type SnapshotScheduler struct {
	cron    *cron.Cron
	service *SnapshotService
	logger  *zap.Logger
	now     func() time.Time
}

// NewSnapshotScheduler registers the monthly snapshot job. schedule is a standard
// 5-field cron expression evaluated in UTC, e.g. "0 2 1 * *".
func NewSnapshotScheduler(service *SnapshotService, schedule string, logger *zap.Logger) (*SnapshotScheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SnapshotScheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		service: service,
		logger:  logger,
		now:     time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid snapshot schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *SnapshotScheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("snapshot scheduler started", zap.Time("next_run", entry.Next))
	}
}

// Stop halts the scheduler and returns a context that is done once a running job finishes.
func (s *SnapshotScheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *SnapshotScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotRunTimeout)
	defer cancel()

	if _, err := s.RunPreviousMonth(ctx); err != nil {
		s.logger.Error("scheduled snapshot failed", zap.Error(err))
	}
}

// RunPreviousMonth snapshots the calendar month before the current one.
func (s *SnapshotScheduler) RunPreviousMonth(ctx context.Context) (int, error) {
	start, _ := MonthRange(s.now())
	return s.service.SnapshotMonth(ctx, start.AddDate(0, -1, 0))
}
