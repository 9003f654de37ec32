// Package worker runs the periodic housekeeping that no request triggers:
// closing allocations whose window has ended and purging expired idempotency keys.
package worker

import (
	"context"
	"log/slog"
	"time"

	"spotlight-ledger/internal/usecase/commands"
)

const (
	defaultInterval = time.Minute
	defaultBatch    = 500
)

type Sweeper struct {
	sweeps   commands.SweepCommands
	interval time.Duration
	batch    int
	logger   *slog.Logger
}

func NewSweeper(sweeps commands.SweepCommands, interval time.Duration, batch int, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	if batch <= 0 {
		batch = defaultBatch
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		sweeps:   sweeps,
		interval: interval,
		batch:    batch,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.RunOnce(ctx)
		}
	}
}

// RunOnce never fails the loop; a failed pass is logged and retried on the next tick.
func (s *Sweeper) RunOnce(ctx context.Context) {
	res, err := s.sweeps.Sweep(ctx, s.batch)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("sweep failed", "error", err)
		return
	}
	if res.ClosedAllocations > 0 || res.PurgedKeys > 0 {
		s.logger.Info("sweep finished",
			"closed_allocations", res.ClosedAllocations,
			"purged_keys", res.PurgedKeys)
	}
}
