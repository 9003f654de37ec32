package repository

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WithdrawalQueries interface {
	InsertWithdrawal(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Withdrawals) error
	GetWithdrawalForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Withdrawals, error)
	ResolveWithdrawal(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ResolveParams) (sqlstore.Withdrawals, error)
	WithdrawalExists(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (bool, error)
}

type WithdrawalRepository struct {
	queries WithdrawalQueries
	db      sqlstore.DBTX
}

func NewWithdrawalRepository(queries WithdrawalQueries, db sqlstore.DBTX) *WithdrawalRepository {
	return &WithdrawalRepository{queries: queries, db: db}
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *withdrawal.Withdrawal) error {
	if err := r.queries.InsertWithdrawal(ctx, r.db, fromWithdrawal(w)); err != nil {
		return writeErr("failed to insert withdrawal", err)
	}
	return nil
}

func (r *WithdrawalRepository) FindByID(ctx context.Context, id uuid.UUID) (*withdrawal.Withdrawal, error) {
	row, err := r.queries.GetWithdrawalForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "withdrawal not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get withdrawal", err)
	}
	return toWithdrawal(row)
}

// Resolve is a single guarded UPDATE, so two concurrent resolutions cannot both succeed.
func (r *WithdrawalRepository) Resolve(ctx context.Context, id uuid.UUID, decision withdrawal.Status, at time.Time) (*withdrawal.Withdrawal, error) {
	row, err := r.queries.ResolveWithdrawal(ctx, r.db, sqlstore.ResolveParams{ID: id, Status: decision.String(), ResolvedAt: at})
	if err != nil {
		if pgconv.IsNoRows(err) {
			exists, exErr := r.queries.WithdrawalExists(ctx, r.db, id)
			if exErr != nil {
				return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to check withdrawal", exErr)
			}
			return nil, conditionalErr("withdrawal", exists)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to resolve withdrawal", err)
	}
	return toWithdrawal(row)
}
