package commands

import (
	"context"
	"log/slog"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/metrics"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// LedgerCommands exposes raw debit and credit, used for admin balance edits.
type LedgerCommands interface {
	Debit(ctx context.Context, accountID uuid.UUID, amount account.Money, reference string) (account.Money, error)
	Credit(ctx context.Context, accountID uuid.UUID, amount account.Money, reference string) (account.Money, error)
	ReadBalance(ctx context.Context, accountID uuid.UUID) (account.Money, error)
}

type ledgerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, clock clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{uow: uow, clock: clock}
}

func (l *ledgerUseCaseImpl) Debit(ctx context.Context, accountID uuid.UUID, amount account.Money, reference string) (account.Money, error) {
	var balance account.Money
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = debit(ctx, tx, accountID, amount, reference, l.clock.Now())
		return err
	})
	metrics.LedgerMutations.WithLabelValues("debit", metrics.Outcome(err, isInsufficientFunds)).Inc()
	if err != nil {
		return account.Money{}, storageErr(err, "debit")
	}
	slog.Info("ledger debit", "account_id", accountID, "amount", amount.String(), "reference", reference)
	return balance, nil
}

func (l *ledgerUseCaseImpl) Credit(ctx context.Context, accountID uuid.UUID, amount account.Money, reference string) (account.Money, error) {
	var balance account.Money
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = credit(ctx, tx, accountID, amount, reference, l.clock.Now())
		return err
	})
	metrics.LedgerMutations.WithLabelValues("credit", metrics.Outcome(err, nil)).Inc()
	if err != nil {
		return account.Money{}, storageErr(err, "credit")
	}
	slog.Info("ledger credit", "account_id", accountID, "amount", amount.String(), "reference", reference)
	return balance, nil
}

func (l *ledgerUseCaseImpl) ReadBalance(ctx context.Context, accountID uuid.UUID) (account.Money, error) {
	var balance account.Money
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		balance, err = tx.Accounts().Balance(ctx, accountID)
		return notFoundAs(err, ErrAccountNotFound)
	})
	if err != nil {
		return account.Money{}, storageErr(err, "read balance")
	}
	return balance, nil
}

// debit applies one atomic compare-and-subtract and journals it inside tx.
func debit(ctx context.Context, tx shared.Tx, accountID uuid.UUID, amount account.Money, reference string, now time.Time) (account.Money, error) {
	if amount.IsZero() {
		return account.Money{}, errs.Mark(account.ErrNonPositive, ErrInvalidInput)
	}
	balance, err := tx.Accounts().Debit(ctx, accountID, amount, now)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindPreconditionFailed):
			return account.Money{}, ErrInsufficientFunds
		case infra.IsKind(err, infra.KindNotFound):
			return account.Money{}, errs.Mark(err, ErrAccountNotFound)
		}
		return account.Money{}, err
	}
	entry := account.NewEntry(accountID, account.EntryDebit, amount, balance, reference, now)
	if err := tx.Entries().Append(ctx, entry); err != nil {
		return account.Money{}, err
	}
	return balance, nil
}

func credit(ctx context.Context, tx shared.Tx, accountID uuid.UUID, amount account.Money, reference string, now time.Time) (account.Money, error) {
	if amount.IsZero() {
		return account.Money{}, errs.Mark(account.ErrNonPositive, ErrInvalidInput)
	}
	balance, err := tx.Accounts().Credit(ctx, accountID, amount, now)
	if err != nil {
		if infra.IsKind(err, infra.KindPreconditionFailed) {
			return account.Money{}, errs.Mark(account.ErrAmountOutOfRange, ErrInvalidInput)
		}
		return account.Money{}, notFoundAs(err, ErrAccountNotFound)
	}
	entry := account.NewEntry(accountID, account.EntryCredit, amount, balance, reference, now)
	if err := tx.Entries().Append(ctx, entry); err != nil {
		return account.Money{}, err
	}
	return balance, nil
}

func isInsufficientFunds(err error) bool {
	return errs.Is(err, ErrInsufficientFunds)
}
