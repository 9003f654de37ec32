package repository

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountQueries interface {
	InsertAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Accounts) error
	DebitAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.BalanceChangeParams) (decimal.Decimal, error)
	CreditAccount(ctx context.Context, db sqlstore.DBTX, arg sqlstore.BalanceChangeParams) (decimal.Decimal, error)
	AccountExists(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (bool, error)
	GetAccount(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Accounts, error)
}

type AccountRepository struct {
	queries AccountQueries
	db      sqlstore.DBTX
}

func NewAccountRepository(queries AccountQueries, db sqlstore.DBTX) *AccountRepository {
	return &AccountRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	err := r.queries.InsertAccount(ctx, r.db, sqlstore.Accounts{
		ID:        acc.ID(),
		Email:     acc.Email().Value(),
		Role:      acc.Role().String(),
		Balance:   acc.Balance().Decimal(),
		CreatedAt: acc.CreatedAt(),
		UpdatedAt: acc.UpdatedAt(),
	})
	if err != nil {
		return writeErr("failed to insert account", err)
	}
	return nil
}

func (r *AccountRepository) Debit(ctx context.Context, accountID uuid.UUID, amount account.Money, at time.Time) (account.Money, error) {
	balance, err := r.queries.DebitAccount(ctx, r.db, sqlstore.BalanceChangeParams{ID: accountID, Amount: amount.Decimal(), At: at})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return account.Money{}, r.explainMiss(ctx, accountID)
		}
		return account.Money{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to debit account", err)
	}
	return toMoney("account", balance)
}

func (r *AccountRepository) Credit(ctx context.Context, accountID uuid.UUID, amount account.Money, at time.Time) (account.Money, error) {
	balance, err := r.queries.CreditAccount(ctx, r.db, sqlstore.BalanceChangeParams{ID: accountID, Amount: amount.Decimal(), At: at})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return account.Money{}, r.explainMiss(ctx, accountID)
		}
		return account.Money{}, writeErr("failed to credit account", err)
	}
	return toMoney("account", balance)
}

func (r *AccountRepository) Balance(ctx context.Context, accountID uuid.UUID) (account.Money, error) {
	row, err := r.queries.GetAccount(ctx, r.db, accountID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return account.Money{}, infra.WrapRepoErr(infra.KindNotFound, "account not found", err)
		}
		return account.Money{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to read balance", err)
	}
	return toMoney("account", row.Balance)
}

func (r *AccountRepository) explainMiss(ctx context.Context, accountID uuid.UUID) error {
	exists, err := r.queries.AccountExists(ctx, r.db, accountID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to check account", err)
	}
	return conditionalErr("account", exists)
}
