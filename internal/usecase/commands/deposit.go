package commands

import (
	"context"
	"log/slog"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/network"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/metrics"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitDepositInput struct {
	AccountID   uuid.UUID
	Amount      account.Money
	Network     string
	TxReference string
}

type DepositResult struct {
	Deposit *deposit.Deposit
	Balance account.Money
}

type DepositCommands interface {
	Submit(ctx context.Context, in SubmitDepositInput) (*deposit.Deposit, error)
	Resolve(ctx context.Context, depositID uuid.UUID, decision deposit.Status) (*DepositResult, error)
}

type depositUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDepositUseCase(uow shared.UnitOfWork, clock clock.Clock) DepositCommands {
	return &depositUseCaseImpl{uow: uow, clock: clock}
}

func (d *depositUseCaseImpl) Submit(ctx context.Context, in SubmitDepositInput) (*deposit.Deposit, error) {
	nw, err := network.Parse(in.Network)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	dep, err := deposit.New(in.AccountID, in.Amount, nw, in.TxReference, d.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Accounts().Balance(ctx, in.AccountID); err != nil {
			return notFoundAs(err, ErrAccountNotFound)
		}
		return tx.Deposits().Create(ctx, dep)
	})
	metrics.Deposits.WithLabelValues("submit", metrics.Outcome(err, isUserCorrectable)).Inc()
	if err != nil {
		return nil, storageErr(err, "submit deposit")
	}
	slog.Info("deposit submitted", "deposit_id", dep.ID(), "account_id", in.AccountID, "amount", in.Amount.String())
	return dep, nil
}

// Resolve confirms or rejects a pending deposit; confirmation credits the account once.
func (d *depositUseCaseImpl) Resolve(ctx context.Context, depositID uuid.UUID, decision deposit.Status) (*DepositResult, error) {
	if !decision.IsTerminal() {
		return nil, errs.Mark(deposit.ErrInvalidDecision, ErrInvalidInput)
	}

	now := d.clock.Now()
	result := &DepositResult{}
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resolved, err := tx.Deposits().Resolve(ctx, depositID, decision, now)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindPreconditionFailed):
				return ErrDepositAlreadyResolved
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrDepositNotFound)
			}
			return err
		}

		var balance account.Money
		if deposit.CreditsOnResolve(decision) {
			balance, err = credit(ctx, tx, resolved.AccountID(), resolved.Amount(), account.DepositRef(resolved.ID()), now)
		} else {
			balance, err = tx.Accounts().Balance(ctx, resolved.AccountID())
		}
		if err != nil {
			return err
		}
		*result = DepositResult{Deposit: resolved, Balance: balance}
		return nil
	})
	metrics.Deposits.WithLabelValues("resolve_"+decision.String(), metrics.Outcome(err, isUserCorrectable)).Inc()
	if err != nil {
		return nil, storageErr(err, "resolve deposit")
	}
	slog.Info("deposit resolved", "deposit_id", depositID, "status", decision.String())
	return result, nil
}
