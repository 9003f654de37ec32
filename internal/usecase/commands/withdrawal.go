package commands

import (
	"context"
	"log/slog"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/network"
	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/metrics"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const endpointWithdraw = "POST /api/withdrawals"

type RequestWithdrawalInput struct {
	AccountID      uuid.UUID
	Amount         account.Money
	Network        string
	Address        string
	Comment        string
	IdempotencyKey string
}

type WithdrawalResult struct {
	Withdrawal *withdrawal.Withdrawal
	Balance    account.Money
	IsReplayed bool
}

type WithdrawalCommands interface {
	RequestWithdrawal(ctx context.Context, in RequestWithdrawalInput) (*WithdrawalResult, error)
	Resolve(ctx context.Context, withdrawalID uuid.UUID, decision withdrawal.Status) (*WithdrawalResult, error)
	// Cancel lets the owner withdraw a pending request. It is resolution as rejected.
	Cancel(ctx context.Context, withdrawalID, accountID uuid.UUID) (*WithdrawalResult, error)
}

type withdrawalUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWithdrawalUseCase(uow shared.UnitOfWork, clock clock.Clock) WithdrawalCommands {
	return &withdrawalUseCaseImpl{uow: uow, clock: clock}
}

func (w *withdrawalUseCaseImpl) RequestWithdrawal(ctx context.Context, in RequestWithdrawalInput) (*WithdrawalResult, error) {
	res, err := w.request(ctx, in)
	metrics.Withdrawals.WithLabelValues("request", metrics.Outcome(err, isUserCorrectable)).Inc()
	return res, err
}

func (w *withdrawalUseCaseImpl) request(ctx context.Context, in RequestWithdrawalInput) (*WithdrawalResult, error) {
	key, err := validateIdempotencyKey(in.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	nw, err := network.Parse(in.Network)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	address, err := withdrawal.NewAddress(in.Address)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	comment, err := withdrawal.NewComment(in.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	now := w.clock.Now()
	wd, err := withdrawal.New(in.AccountID, in.Amount, nw, address, comment, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	hash := requestHash(struct {
		Amount  string `json:"amount"`
		Network string `json:"network"`
		Address string `json:"address"`
		Comment string `json:"comment"`
	}{in.Amount.String(), nw.String(), address.Value(), comment.Value()})

	result := &WithdrawalResult{}
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prior, err := claimIdempotency(ctx, tx, key, in.AccountID, endpointWithdraw, hash, now)
		if err != nil {
			return err
		}
		if prior != nil {
			existing, err := tx.Withdrawals().FindByID(ctx, *prior)
			if err != nil {
				return notFoundAs(err, ErrWithdrawalNotFound)
			}
			balance, err := tx.Accounts().Balance(ctx, in.AccountID)
			if err != nil {
				return notFoundAs(err, ErrAccountNotFound)
			}
			*result = WithdrawalResult{Withdrawal: existing, Balance: balance, IsReplayed: true}
			return nil
		}

		balance, err := debit(ctx, tx, in.AccountID, in.Amount, account.WithdrawalRef(wd.ID()), now)
		if err != nil {
			return err
		}
		if err := tx.Withdrawals().Create(ctx, wd); err != nil {
			return err
		}
		if err := completeIdempotency(ctx, tx, key, in.AccountID, wd.ID()); err != nil {
			return err
		}
		*result = WithdrawalResult{Withdrawal: wd, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "request withdrawal")
	}

	if !result.IsReplayed {
		slog.Info("withdrawal requested",
			"withdrawal_id", wd.ID(),
			"account_id", in.AccountID,
			"amount", in.Amount.String(),
			"network", nw.String())
	}
	return result, nil
}

func (w *withdrawalUseCaseImpl) Resolve(ctx context.Context, withdrawalID uuid.UUID, decision withdrawal.Status) (*WithdrawalResult, error) {
	res, err := w.resolve(ctx, withdrawalID, uuid.Nil, decision)
	metrics.Withdrawals.WithLabelValues("resolve_"+decision.String(), metrics.Outcome(err, isUserCorrectable)).Inc()
	return res, err
}

func (w *withdrawalUseCaseImpl) Cancel(ctx context.Context, withdrawalID, accountID uuid.UUID) (*WithdrawalResult, error) {
	res, err := w.resolve(ctx, withdrawalID, accountID, withdrawal.StatusRejected)
	metrics.Withdrawals.WithLabelValues("cancel", metrics.Outcome(err, isUserCorrectable)).Inc()
	return res, err
}

// resolve applies decision once. When owner is set the withdrawal must belong to it.
func (w *withdrawalUseCaseImpl) resolve(ctx context.Context, withdrawalID, owner uuid.UUID, decision withdrawal.Status) (*WithdrawalResult, error) {
	if !decision.IsTerminal() {
		return nil, errs.Mark(withdrawal.ErrInvalidDecision, ErrInvalidInput)
	}

	now := w.clock.Now()
	result := &WithdrawalResult{}
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if owner != uuid.Nil {
			current, err := tx.Withdrawals().FindByID(ctx, withdrawalID)
			if err != nil {
				return notFoundAs(err, ErrWithdrawalNotFound)
			}
			if current.AccountID() != owner {
				return ErrWithdrawalNotFound
			}
		}

		resolved, err := tx.Withdrawals().Resolve(ctx, withdrawalID, decision, now)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindPreconditionFailed):
				return ErrWithdrawalAlreadyResolved
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrWithdrawalNotFound)
			}
			return err
		}

		var balance account.Money
		if withdrawal.RefundsOnResolve(decision) {
			balance, err = credit(ctx, tx, resolved.AccountID(), resolved.Amount(), account.WithdrawalRefundRef(resolved.ID()), now)
		} else {
			balance, err = tx.Accounts().Balance(ctx, resolved.AccountID())
		}
		if err != nil {
			return err
		}
		*result = WithdrawalResult{Withdrawal: resolved, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "resolve withdrawal")
	}

	slog.Info("withdrawal resolved",
		"withdrawal_id", withdrawalID,
		"status", decision.String(),
		"refunded", withdrawal.RefundsOnResolve(decision))
	return result, nil
}
