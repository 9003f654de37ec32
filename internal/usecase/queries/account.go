package queries

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type AccountReadStore interface {
	FindAccount(ctx context.Context, id uuid.UUID) (*AccountView, error)
	ListEntries(ctx context.Context, accountID uuid.UUID, filter ListFilter) ([]EntryView, error)
}

type AccountQueries interface {
	Get(ctx context.Context, accountID uuid.UUID) (*AccountView, error)
	Balance(ctx context.Context, accountID uuid.UUID) (account.Money, error)
	Entries(ctx context.Context, accountID uuid.UUID, params ListParams) (*Page[EntryView], error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{readStore: readStore}
}

func (q *accountQueriesImpl) Get(ctx context.Context, accountID uuid.UUID) (*AccountView, error) {
	view, err := q.readStore.FindAccount(ctx, accountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

// Balance is a snapshot read; it may be stale by the time the caller acts on it.
func (q *accountQueriesImpl) Balance(ctx context.Context, accountID uuid.UUID) (account.Money, error) {
	view, err := q.Get(ctx, accountID)
	if err != nil {
		return account.Money{}, err
	}
	return view.Balance, nil
}

func (q *accountQueriesImpl) Entries(ctx context.Context, accountID uuid.UUID, params ListParams) (*Page[EntryView], error) {
	filter, err := buildFilter(params, func(s string) bool { return account.EntryKind(s).IsValid() })
	if err != nil {
		return nil, err
	}
	rows, err := q.readStore.ListEntries(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	return paginate(rows, filter.Limit, func(e EntryView) (time.Time, uuid.UUID) { return e.CreatedAt, e.ID }), nil
}
