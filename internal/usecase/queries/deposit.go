package queries

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/deposit"

	"github.com/google/uuid"
)

type DepositReadStore interface {
	ListDeposits(ctx context.Context, filter ListFilter) ([]DepositView, error)
}

type DepositQueries interface {
	List(ctx context.Context, params ListParams) (*Page[DepositView], error)
}

type depositQueriesImpl struct {
	readStore DepositReadStore
}

func NewDepositQueries(readStore DepositReadStore) DepositQueries {
	return &depositQueriesImpl{readStore: readStore}
}

func (q *depositQueriesImpl) List(ctx context.Context, params ListParams) (*Page[DepositView], error) {
	filter, err := buildFilter(params, func(s string) bool { return deposit.Status(s).IsValid() })
	if err != nil {
		return nil, err
	}
	rows, err := q.readStore.ListDeposits(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(rows, filter.Limit, func(v DepositView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}
