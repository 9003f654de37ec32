package repository

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DepositQueries interface {
	InsertDeposit(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Deposits) error
	GetDepositForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Deposits, error)
	ResolveDeposit(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ResolveParams) (sqlstore.Deposits, error)
	DepositExists(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (bool, error)
}

type DepositRepository struct {
	queries DepositQueries
	db      sqlstore.DBTX
}

func NewDepositRepository(queries DepositQueries, db sqlstore.DBTX) *DepositRepository {
	return &DepositRepository{queries: queries, db: db}
}

func (r *DepositRepository) Create(ctx context.Context, d *deposit.Deposit) error {
	if err := r.queries.InsertDeposit(ctx, r.db, fromDeposit(d)); err != nil {
		return writeErr("failed to insert deposit", err)
	}
	return nil
}

func (r *DepositRepository) FindByID(ctx context.Context, id uuid.UUID) (*deposit.Deposit, error) {
	row, err := r.queries.GetDepositForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "deposit not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get deposit", err)
	}
	return toDeposit(row)
}

func (r *DepositRepository) Resolve(ctx context.Context, id uuid.UUID, decision deposit.Status, at time.Time) (*deposit.Deposit, error) {
	row, err := r.queries.ResolveDeposit(ctx, r.db, sqlstore.ResolveParams{ID: id, Status: decision.String(), ResolvedAt: at})
	if err != nil {
		if pgconv.IsNoRows(err) {
			exists, exErr := r.queries.DepositExists(ctx, r.db, id)
			if exErr != nil {
				return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to check deposit", exErr)
			}
			return nil, conditionalErr("deposit", exists)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to resolve deposit", err)
	}
	return toDeposit(row)
}
