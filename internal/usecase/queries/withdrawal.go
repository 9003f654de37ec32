package queries

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/withdrawal"

	"github.com/google/uuid"
)

type WithdrawalReadStore interface {
	ListWithdrawals(ctx context.Context, filter ListFilter) ([]WithdrawalView, error)
}

type WithdrawalQueries interface {
	List(ctx context.Context, params ListParams) (*Page[WithdrawalView], error)
}

type withdrawalQueriesImpl struct {
	readStore WithdrawalReadStore
}

func NewWithdrawalQueries(readStore WithdrawalReadStore) WithdrawalQueries {
	return &withdrawalQueriesImpl{readStore: readStore}
}

func (q *withdrawalQueriesImpl) List(ctx context.Context, params ListParams) (*Page[WithdrawalView], error) {
	filter, err := buildFilter(params, func(s string) bool { return withdrawal.Status(s).IsValid() })
	if err != nil {
		return nil, err
	}
	rows, err := q.readStore.ListWithdrawals(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(rows, filter.Limit, func(v WithdrawalView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}
