package scheduler

import (
	"context"
	"log/slog"
	"time"

	"portfolio_sync/internal/domain"
)

// Syncer runs one full batch pass.
type Syncer interface {
	SyncAll(ctx context.Context) *domain.Report
}

// Scheduler triggers periodic sync passes: one on start, then one per
// interval until the context is cancelled.
type Scheduler struct {
	syncer      Syncer
	interval    time.Duration
	passTimeout time.Duration
	logger      *slog.Logger
}

func NewScheduler(syncer Syncer, interval, passTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:      syncer,
		interval:    interval,
		passTimeout: passTimeout,
		logger:      logger.With("component", "scheduler"),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

func (s *Scheduler) runPass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, s.passTimeout)
	defer cancel()

	report := s.syncer.SyncAll(passCtx)

	for t, result := range report.Results {
		if result.Errors > 0 {
			s.logger.Warn("type finished with errors", "type", t, "synced", result.Synced, "errors", result.Errors)
		}
	}
}
