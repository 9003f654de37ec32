package repository

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/patch"
	"spotlight-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocationQueries interface {
	InsertAllocation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Allocations) error
	GetAllocationForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Allocations, error)
	FinishAllocation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.FinishAllocationParams) (sqlstore.Allocations, error)
	AllocationExists(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (bool, error)
	ListExpiredActiveAllocations(ctx context.Context, db sqlstore.DBTX, now time.Time, limit int32) ([]uuid.UUID, error)
}

type AllocationRepository struct {
	queries AllocationQueries
	db      sqlstore.DBTX
}

func NewAllocationRepository(queries AllocationQueries, db sqlstore.DBTX) *AllocationRepository {
	return &AllocationRepository{queries: queries, db: db}
}

func (r *AllocationRepository) Create(ctx context.Context, a *allocation.Allocation) error {
	if err := r.queries.InsertAllocation(ctx, r.db, fromAllocation(a)); err != nil {
		return writeErr("failed to insert allocation", err)
	}
	return nil
}

func (r *AllocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*allocation.Allocation, error) {
	row, err := r.queries.GetAllocationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "allocation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get allocation", err)
	}
	return toAllocation(row)
}

func (r *AllocationRepository) Finish(ctx context.Context, id uuid.UUID, to allocation.Status, percent *decimal.Decimal, at time.Time) (*allocation.Allocation, error) {
	if !to.IsTerminal() {
		return nil, infra.WrapRepoErr(infra.KindPreconditionFailed, "allocation target status", allocation.ErrInvalidTransition)
	}
	row, err := r.queries.FinishAllocation(ctx, r.db, sqlstore.FinishAllocationParams{
		ID:       id,
		Status:   to.String(),
		Percent:  pgconv.DecimalPtrToNullable(percent),
		ClosedAt: at,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			exists, exErr := r.queries.AllocationExists(ctx, r.db, id)
			if exErr != nil {
				return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to check allocation", exErr)
			}
			return nil, conditionalErr("allocation", exists)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to finish allocation", err)
	}
	return toAllocation(row)
}

func (r *AllocationRepository) ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListExpiredActiveAllocations(ctx, r.db, now, int32(patch.Clamp(limit, 1, maxBatch))) // #nosec G115 -- clamped
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list expired allocations", err)
	}
	return ids, nil
}

const maxBatch = 10_000
