package commands

import (
	"context"
	"log/slog"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/metrics"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const endpointAllocate = "POST /api/allocations"

// CoinActivity answers which activation window a coin is in.
type CoinActivity interface {
	Contains(coinID int) bool
	ActiveWindowFor(coinID int, at time.Time) (schedule.ActiveWindow, bool)
}

type AllocateInput struct {
	AccountID uuid.UUID
	CoinID    int
	Amount    account.Money
	// At defaults to the current time.
	At             time.Time
	IdempotencyKey string
}

type AllocationResult struct {
	Allocation *allocation.Allocation
	Balance    account.Money
	IsReplayed bool
}

type AllocationCommands interface {
	Allocate(ctx context.Context, in AllocateInput) (*AllocationResult, error)
	Cancel(ctx context.Context, allocationID uuid.UUID) (*AllocationResult, error)
	Close(ctx context.Context, allocationID uuid.UUID, percent *decimal.Decimal) (*allocation.Allocation, error)
	CloseExpired(ctx context.Context, limit int) (int, error)
}

type allocationUseCaseImpl struct {
	uow      shared.UnitOfWork
	activity CoinActivity
	clock    clock.Clock
}

func NewAllocationUseCase(uow shared.UnitOfWork, activity CoinActivity, clock clock.Clock) AllocationCommands {
	return &allocationUseCaseImpl{
		uow:      uow,
		activity: activity,
		clock:    clock,
	}
}

func (a *allocationUseCaseImpl) Allocate(ctx context.Context, in AllocateInput) (*AllocationResult, error) {
	res, err := a.allocate(ctx, in)
	metrics.Allocations.WithLabelValues("allocate", metrics.Outcome(err, isUserCorrectable)).Inc()
	return res, err
}

func (a *allocationUseCaseImpl) allocate(ctx context.Context, in AllocateInput) (*AllocationResult, error) {
	if in.Amount.IsZero() {
		return nil, errs.Mark(account.ErrNonPositive, ErrInvalidInput)
	}
	key, err := validateIdempotencyKey(in.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if !a.activity.Contains(in.CoinID) {
		return nil, ErrUnknownCoin
	}

	now := a.clock.Now()
	at := in.At
	if at.IsZero() {
		at = now
	}
	window, ok := a.activity.ActiveWindowFor(in.CoinID, at)
	if !ok {
		return nil, ErrCoinNotActive
	}

	alloc, err := allocation.New(in.AccountID, in.CoinID, in.Amount, window, at)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	hash := requestHash(struct {
		CoinID int    `json:"coin_id"`
		Amount string `json:"amount"`
	}{in.CoinID, in.Amount.String()})

	result := &AllocationResult{}
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prior, err := claimIdempotency(ctx, tx, key, in.AccountID, endpointAllocate, hash, now)
		if err != nil {
			return err
		}
		if prior != nil {
			existing, err := tx.Allocations().FindByID(ctx, *prior)
			if err != nil {
				return notFoundAs(err, ErrAllocationNotFound)
			}
			balance, err := tx.Accounts().Balance(ctx, in.AccountID)
			if err != nil {
				return notFoundAs(err, ErrAccountNotFound)
			}
			*result = AllocationResult{Allocation: existing, Balance: balance, IsReplayed: true}
			return nil
		}

		balance, err := debit(ctx, tx, in.AccountID, in.Amount, account.AllocationRef(alloc.ID()), now)
		if err != nil {
			return err
		}
		if err := tx.Allocations().Create(ctx, alloc); err != nil {
			return err
		}
		if err := completeIdempotency(ctx, tx, key, in.AccountID, alloc.ID()); err != nil {
			return err
		}
		*result = AllocationResult{Allocation: alloc, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "allocate")
	}

	if !result.IsReplayed {
		slog.Info("allocation created",
			"allocation_id", alloc.ID(),
			"account_id", in.AccountID,
			"coin_id", in.CoinID,
			"amount", in.Amount.String(),
			"expires_at", alloc.ExpiresAt())
	}
	return result, nil
}

// Cancel ends an active allocation and refunds its amount in the same transaction.
func (a *allocationUseCaseImpl) Cancel(ctx context.Context, allocationID uuid.UUID) (*AllocationResult, error) {
	now := a.clock.Now()
	result := &AllocationResult{}
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		alloc, err := a.finish(ctx, tx, allocationID, allocation.StatusCancelled, nil, now)
		if err != nil {
			return err
		}
		balance, err := credit(ctx, tx, alloc.AccountID(), alloc.Amount(), account.AllocationRefundRef(alloc.ID()), now)
		if err != nil {
			return err
		}
		*result = AllocationResult{Allocation: alloc, Balance: balance}
		return nil
	})
	metrics.Allocations.WithLabelValues("cancel", metrics.Outcome(err, isUserCorrectable)).Inc()
	if err != nil {
		return nil, storageErr(err, "cancel allocation")
	}
	slog.Info("allocation cancelled", "allocation_id", allocationID, "refund", result.Allocation.Amount().String())
	return result, nil
}

func (a *allocationUseCaseImpl) Close(ctx context.Context, allocationID uuid.UUID, percent *decimal.Decimal) (*allocation.Allocation, error) {
	if percent != nil {
		if err := allocation.ValidatePercent(*percent); err != nil {
			return nil, errs.Mark(err, ErrInvalidInput)
		}
	}
	var closed *allocation.Allocation
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		closed, err = a.finish(ctx, tx, allocationID, allocation.StatusClosed, percent, a.clock.Now())
		return err
	})
	metrics.Allocations.WithLabelValues("close", metrics.Outcome(err, isUserCorrectable)).Inc()
	if err != nil {
		return nil, storageErr(err, "close allocation")
	}
	return closed, nil
}

// CloseExpired closes up to limit active allocations whose window has ended.
// Each allocation closes in its own transaction so one failure does not hold back the rest.
func (a *allocationUseCaseImpl) CloseExpired(ctx context.Context, limit int) (int, error) {
	now := a.clock.Now()
	var ids []uuid.UUID
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Allocations().ListExpiredActive(ctx, now, limit)
		return err
	})
	if err != nil {
		return 0, storageErr(err, "list expired allocations")
	}

	closed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return closed, ctx.Err()
		}
		_, err := a.Close(ctx, id, nil)
		switch {
		case err == nil:
			closed++
		case errs.Is(err, ErrAllocationNotActive):
			// closed concurrently
		default:
			return closed, err
		}
	}
	return closed, nil
}

func (a *allocationUseCaseImpl) finish(
	ctx context.Context,
	tx shared.Tx,
	id uuid.UUID,
	to allocation.Status,
	percent *decimal.Decimal,
	now time.Time,
) (*allocation.Allocation, error) {
	alloc, err := tx.Allocations().Finish(ctx, id, to, percent, now)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindPreconditionFailed):
			return nil, ErrAllocationNotActive
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrAllocationNotFound)
		}
		return nil, err
	}
	return alloc, nil
}

// isUserCorrectable separates rejections a caller can fix from failures.
func isUserCorrectable(err error) bool {
	for _, e := range []error{
		ErrInvalidInput, ErrInsufficientFunds, ErrCoinNotActive, ErrUnknownCoin,
		ErrAllocationNotActive, ErrWithdrawalAlreadyResolved, ErrDepositAlreadyResolved,
		ErrIdempotencyMismatch, ErrIdempotencyInProgress,
	} {
		if errs.Is(err, e) {
			return true
		}
	}
	return false
}
