package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves the query side from committed rows.
type ReadStore struct {
	store *Store
}

func NewReadStore(s *Store) *ReadStore {
	return &ReadStore{store: s}
}

var (
	_ queries.AccountReadStore    = (*ReadStore)(nil)
	_ queries.AllocationReadStore = (*ReadStore)(nil)
	_ queries.WithdrawalReadStore = (*ReadStore)(nil)
	_ queries.DepositReadStore    = (*ReadStore)(nil)
)

func (r *ReadStore) FindAccount(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	row, ok := lookup(r.store, r.store.accounts, id)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "account not found")
	}
	var acc *account.Account
	var deleted bool
	if err := peek(ctx, row.lock, func() { acc, deleted = row.val, row.deleted }); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "read account", err)
	}
	if deleted {
		return nil, infra.NewRepoErr(infra.KindNotFound, "account not found")
	}
	return &queries.AccountView{
		ID:        acc.ID(),
		Email:     acc.Email().Value(),
		Role:      acc.Role().String(),
		Balance:   acc.Balance(),
		CreatedAt: acc.CreatedAt(),
		UpdatedAt: acc.UpdatedAt(),
	}, nil
}

func (r *ReadStore) ListEntries(_ context.Context, accountID uuid.UUID, filter queries.ListFilter) ([]queries.EntryView, error) {
	r.store.mu.RLock()
	var out []queries.EntryView
	for _, e := range r.store.entries {
		if e.AccountID != accountID {
			continue
		}
		if filter.Status != "" && string(e.Kind) != filter.Status {
			continue
		}
		out = append(out, queries.EntryView{
			ID:           e.ID,
			AccountID:    e.AccountID,
			Kind:         string(e.Kind),
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			Reference:    e.Reference,
			CreatedAt:    e.CreatedAt,
		})
	}
	r.store.mu.RUnlock()

	return window(out, filter, func(v queries.EntryView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}

func (r *ReadStore) ListAllocations(ctx context.Context, filter queries.ListFilter) ([]queries.AllocationView, error) {
	rows, err := snapshot(ctx, r.store, r.store.allocations)
	if err != nil {
		return nil, err
	}
	var out []queries.AllocationView
	for _, a := range rows {
		if !matches(filter, a.AccountID(), a.Status().String()) {
			continue
		}
		out = append(out, queries.AllocationView{
			ID:        a.ID(),
			AccountID: a.AccountID(),
			CoinID:    a.CoinID(),
			Amount:    a.Amount(),
			Percent:   a.Percent(),
			Status:    a.Status().String(),
			CreatedAt: a.CreatedAt(),
			ExpiresAt: a.ExpiresAt(),
			ClosedAt:  a.ClosedAt(),
		})
	}
	return window(out, filter, func(v queries.AllocationView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}

func (r *ReadStore) ListWithdrawals(ctx context.Context, filter queries.ListFilter) ([]queries.WithdrawalView, error) {
	rows, err := snapshot(ctx, r.store, r.store.withdrawals)
	if err != nil {
		return nil, err
	}
	var out []queries.WithdrawalView
	for _, w := range rows {
		if !matches(filter, w.AccountID(), w.Status().String()) {
			continue
		}
		out = append(out, queries.WithdrawalView{
			ID:         w.ID(),
			AccountID:  w.AccountID(),
			Amount:     w.Amount(),
			Network:    w.Network().String(),
			Address:    w.Address().Value(),
			Comment:    w.Comment().Value(),
			Status:     w.Status().String(),
			CreatedAt:  w.CreatedAt(),
			ResolvedAt: w.ResolvedAt(),
		})
	}
	return window(out, filter, func(v queries.WithdrawalView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}

func (r *ReadStore) ListDeposits(ctx context.Context, filter queries.ListFilter) ([]queries.DepositView, error) {
	rows, err := snapshot(ctx, r.store, r.store.deposits)
	if err != nil {
		return nil, err
	}
	var out []queries.DepositView
	for _, d := range rows {
		if !matches(filter, d.AccountID(), d.Status().String()) {
			continue
		}
		out = append(out, queries.DepositView{
			ID:          d.ID(),
			AccountID:   d.AccountID(),
			Amount:      d.Amount(),
			Network:     d.Network().String(),
			TxReference: d.TxReference(),
			Status:      d.Status().String(),
			CreatedAt:   d.CreatedAt(),
			ResolvedAt:  d.ResolvedAt(),
		})
	}
	return window(out, filter, func(v queries.DepositView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }), nil
}

// snapshot copies the current value of every row. Rows locked by an open
// transaction are read once it finishes.
func snapshot[T interface{ Clone() T }](ctx context.Context, s *Store, m map[uuid.UUID]*row[T]) ([]T, error) {
	s.mu.RLock()
	rows := make([]*row[T], 0, len(m))
	for _, r := range m {
		rows = append(rows, r)
	}
	s.mu.RUnlock()

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		var v T
		if err := peek(ctx, r.lock, func() { v = r.val.Clone() }); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "scan rows", err)
		}
		out = append(out, v)
	}
	return out, nil
}

func matches(f queries.ListFilter, accountID uuid.UUID, status string) bool {
	if f.AccountID != nil && *f.AccountID != accountID {
		return false
	}
	return f.Status == "" || f.Status == status
}

// window orders rows newest first, applies the cursor and keeps Limit+1 rows.
func window[T any](rows []T, f queries.ListFilter, key func(T) (time.Time, uuid.UUID)) []T {
	slices.SortFunc(rows, func(a, b T) int {
		ta, ia := key(a)
		tb, ib := key(b)
		return -compareKey(ta, ia, tb, ib)
	})
	if f.BeforeTime != nil {
		cut := 0
		for cut < len(rows) {
			t, id := key(rows[cut])
			if compareKey(t, id, *f.BeforeTime, f.BeforeID) < 0 {
				break
			}
			cut++
		}
		rows = rows[cut:]
	}
	if f.Limit > 0 && len(rows) > f.Limit+1 {
		rows = rows[:f.Limit+1]
	}
	return rows
}

func compareKey(ta time.Time, ia uuid.UUID, tb time.Time, ib uuid.UUID) int {
	if c := ta.Compare(tb); c != 0 {
		return c
	}
	return bytes.Compare(ia[:], ib[:])
}

