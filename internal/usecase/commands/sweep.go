package commands

import (
	"context"
	"log/slog"

	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/metrics"
	"spotlight-ledger/internal/usecase/shared"
)

type SweepResult struct {
	ClosedAllocations int
	PurgedKeys        int64
}

// SweepCommands is the periodic housekeeping run by the background worker.
type SweepCommands interface {
	Sweep(ctx context.Context, batch int) (SweepResult, error)
}

type sweepUseCaseImpl struct {
	uow         shared.UnitOfWork
	allocations AllocationCommands
	clock       clock.Clock
}

func NewSweepUseCase(uow shared.UnitOfWork, allocations AllocationCommands, clock clock.Clock) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, allocations: allocations, clock: clock}
}

func (s *sweepUseCaseImpl) Sweep(ctx context.Context, batch int) (SweepResult, error) {
	var res SweepResult

	closed, err := s.allocations.CloseExpired(ctx, batch)
	res.ClosedAllocations = closed
	metrics.SweptRecords.WithLabelValues("allocation").Add(float64(closed))
	if err != nil {
		return res, err
	}

	now := s.clock.Now()
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		res.PurgedKeys, err = tx.Idempotency().PurgeExpired(ctx, now)
		return err
	})
	if err != nil {
		return res, storageErr(err, "purge idempotency keys")
	}
	metrics.SweptRecords.WithLabelValues("idempotency_key").Add(float64(res.PurgedKeys))

	if res.ClosedAllocations > 0 || res.PurgedKeys > 0 {
		slog.Info("sweep finished",
			"closed_allocations", res.ClosedAllocations,
			"purged_keys", res.PurgedKeys)
	}
	return res, nil
}
