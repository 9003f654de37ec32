package commands

import (
	"context"
	"log/slog"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/usecase/shared"
)

type AccountCommands interface {
	Open(ctx context.Context, email string, role string) (*account.Account, error)
}

type accountUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAccountUseCase(uow shared.UnitOfWork, clock clock.Clock) AccountCommands {
	return &accountUseCaseImpl{uow: uow, clock: clock}
}

// Open creates an account with a zero balance. Funds arrive only through the ledger.
func (a *accountUseCaseImpl) Open(ctx context.Context, email string, role string) (*account.Account, error) {
	addr, err := account.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	if role == "" {
		role = account.RoleUser.String()
	}
	r, err := account.NewRole(role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	acc := account.NewAccount(addr, r, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Accounts().Create(ctx, acc); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateAccount)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err, "open account")
	}
	slog.Info("account opened", "account_id", acc.ID(), "role", r.String())
	return acc, nil
}
