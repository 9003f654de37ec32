package queries

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/allocation"

	"github.com/google/uuid"
)

type AllocationReadStore interface {
	ListAllocations(ctx context.Context, filter ListFilter) ([]AllocationView, error)
}

type AllocationQueries interface {
	List(ctx context.Context, params ListParams) (*Page[AllocationView], error)
}

type allocationQueriesImpl struct {
	readStore AllocationReadStore
}

func NewAllocationQueries(readStore AllocationReadStore) AllocationQueries {
	return &allocationQueriesImpl{readStore: readStore}
}

func (q *allocationQueriesImpl) List(ctx context.Context, params ListParams) (*Page[AllocationView], error) {
	filter, err := buildFilter(params, func(s string) bool { return allocation.Status(s).IsValid() })
	if err != nil {
		return nil, err
	}
	rows, err := q.readStore.ListAllocations(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(rows, filter.Limit, func(v AllocationView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}
