package memstore

import (
	"context"
	"errors"
	"slices"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func lookup[K comparable, T any](s *Store, m map[K]*row[T], k K) (*row[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := m[k]
	return r, ok
}

// lockRow finds the row for k and holds its lock for the rest of the transaction.
func lockRow[K comparable, T any](ctx context.Context, t *memTx, m map[K]*row[T], k K, what string) (*row[T], error) {
	r, ok := lookup(t.store, m, k)
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, what+" not found")
	}
	if err := t.acquire(ctx, r.lock); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "lock "+what, err)
	}
	if r.deleted {
		return nil, infra.NewRepoErr(infra.KindNotFound, what+" not found")
	}
	return r, nil
}

type accountRepo struct{ tx *memTx }

func (r *accountRepo) Create(_ context.Context, acc *account.Account) error {
	s := r.tx.store
	email := acc.Email().Value()

	s.mu.Lock()
	if _, taken := s.emails[email]; taken {
		s.mu.Unlock()
		return infra.NewRepoErr(infra.KindDuplicateKey, "account email already registered")
	}
	if _, taken := s.accounts[acc.ID()]; taken {
		s.mu.Unlock()
		return infra.NewRepoErr(infra.KindDuplicateKey, "account id already exists")
	}
	nr := newRow(acc.Clone())
	nr.lock <- struct{}{}
	s.accounts[acc.ID()] = nr
	s.emails[email] = acc.ID()
	s.mu.Unlock()

	r.tx.adopt(nr.lock)
	r.tx.undo = append(r.tx.undo, func() {
		s.mu.Lock()
		delete(s.accounts, acc.ID())
		delete(s.emails, email)
		s.mu.Unlock()
		nr.deleted = true
	})
	return nil
}

func (r *accountRepo) Debit(ctx context.Context, accountID uuid.UUID, amount account.Money, at time.Time) (account.Money, error) {
	return r.apply(ctx, accountID, func(acc *account.Account) error {
		if err := acc.Debit(amount, at); err != nil {
			return infra.WrapRepoErr(infra.KindPreconditionFailed, "balance does not cover debit", err)
		}
		return nil
	})
}

func (r *accountRepo) Credit(ctx context.Context, accountID uuid.UUID, amount account.Money, at time.Time) (account.Money, error) {
	return r.apply(ctx, accountID, func(acc *account.Account) error {
		if err := acc.Credit(amount, at); err != nil {
			return infra.WrapRepoErr(infra.KindPreconditionFailed, "credit exceeds balance limit", err)
		}
		return nil
	})
}

func (r *accountRepo) Balance(ctx context.Context, accountID uuid.UUID) (account.Money, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.accounts, accountID, "account")
	if err != nil {
		return account.Money{}, err
	}
	return row.val.Balance(), nil
}

// apply mutates a copy of the account and swaps it in, so a failed mutation changes nothing.
func (r *accountRepo) apply(ctx context.Context, accountID uuid.UUID, mutate func(*account.Account) error) (account.Money, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.accounts, accountID, "account")
	if err != nil {
		return account.Money{}, err
	}
	prev := row.val
	next := prev.Clone()
	if err := mutate(next); err != nil {
		return account.Money{}, err
	}
	row.val = next
	r.tx.undo = append(r.tx.undo, func() { row.val = prev })
	return next.Balance(), nil
}

type entryRepo struct{ tx *memTx }

func (r *entryRepo) Append(_ context.Context, entry account.Entry) error {
	r.tx.onCommit = append(r.tx.onCommit, func(s *Store) {
		s.entries = append(s.entries, entry)
	})
	return nil
}

type allocationRepo struct{ tx *memTx }

func (r *allocationRepo) Create(_ context.Context, a *allocation.Allocation) error {
	c := a.Clone()
	r.tx.onCommit = append(r.tx.onCommit, func(s *Store) {
		s.allocations[c.ID()] = newRow(c)
	})
	return nil
}

func (r *allocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*allocation.Allocation, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.allocations, id, "allocation")
	if err != nil {
		return nil, err
	}
	return row.val.Clone(), nil
}

func (r *allocationRepo) Finish(ctx context.Context, id uuid.UUID, to allocation.Status, percent *decimal.Decimal, at time.Time) (*allocation.Allocation, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.allocations, id, "allocation")
	if err != nil {
		return nil, err
	}
	prev := row.val
	next := prev.Clone()
	if err := next.Transition(to, percent, at); err != nil {
		if errors.Is(err, allocation.ErrInvalidTransition) {
			return nil, infra.WrapRepoErr(infra.KindPreconditionFailed, "allocation not active", err)
		}
		return nil, err
	}
	row.val = next
	r.tx.undo = append(r.tx.undo, func() { row.val = prev })
	return next.Clone(), nil
}

func (r *allocationRepo) ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	s := r.tx.store
	s.mu.RLock()
	rows := make([]*row[*allocation.Allocation], 0, len(s.allocations))
	for _, row := range s.allocations {
		rows = append(rows, row)
	}
	s.mu.RUnlock()

	type candidate struct {
		id        uuid.UUID
		expiresAt time.Time
	}
	var found []candidate
	for _, row := range rows {
		var a *allocation.Allocation
		if err := r.tx.peek(ctx, row.lock, func() { a = row.val }); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "scan allocations", err)
		}
		if a.Status() == allocation.StatusActive && a.IsExpired(now) {
			found = append(found, candidate{id: a.ID(), expiresAt: a.ExpiresAt()})
		}
	}
	slices.SortFunc(found, func(a, b candidate) int { return a.expiresAt.Compare(b.expiresAt) })
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	ids := make([]uuid.UUID, len(found))
	for i, c := range found {
		ids[i] = c.id
	}
	return ids, nil
}

type withdrawalRepo struct{ tx *memTx }

func (r *withdrawalRepo) Create(_ context.Context, w *withdrawal.Withdrawal) error {
	c := w.Clone()
	r.tx.onCommit = append(r.tx.onCommit, func(s *Store) {
		s.withdrawals[c.ID()] = newRow(c)
	})
	return nil
}

func (r *withdrawalRepo) FindByID(ctx context.Context, id uuid.UUID) (*withdrawal.Withdrawal, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.withdrawals, id, "withdrawal")
	if err != nil {
		return nil, err
	}
	return row.val.Clone(), nil
}

func (r *withdrawalRepo) Resolve(ctx context.Context, id uuid.UUID, decision withdrawal.Status, at time.Time) (*withdrawal.Withdrawal, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.withdrawals, id, "withdrawal")
	if err != nil {
		return nil, err
	}
	prev := row.val
	next := prev.Clone()
	if err := next.Resolve(decision, at); err != nil {
		if errors.Is(err, withdrawal.ErrAlreadyResolved) {
			return nil, infra.WrapRepoErr(infra.KindPreconditionFailed, "withdrawal not pending", err)
		}
		return nil, err
	}
	row.val = next
	r.tx.undo = append(r.tx.undo, func() { row.val = prev })
	return next.Clone(), nil
}

type depositRepo struct{ tx *memTx }

func (r *depositRepo) Create(_ context.Context, d *deposit.Deposit) error {
	c := d.Clone()
	r.tx.onCommit = append(r.tx.onCommit, func(s *Store) {
		s.deposits[c.ID()] = newRow(c)
	})
	return nil
}

func (r *depositRepo) FindByID(ctx context.Context, id uuid.UUID) (*deposit.Deposit, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.deposits, id, "deposit")
	if err != nil {
		return nil, err
	}
	return row.val.Clone(), nil
}

func (r *depositRepo) Resolve(ctx context.Context, id uuid.UUID, decision deposit.Status, at time.Time) (*deposit.Deposit, error) {
	row, err := lockRow(ctx, r.tx, r.tx.store.deposits, id, "deposit")
	if err != nil {
		return nil, err
	}
	prev := row.val
	next := prev.Clone()
	if err := next.Resolve(decision, at); err != nil {
		if errors.Is(err, deposit.ErrAlreadyResolved) {
			return nil, infra.WrapRepoErr(infra.KindPreconditionFailed, "deposit not pending", err)
		}
		return nil, err
	}
	row.val = next
	r.tx.undo = append(r.tx.undo, func() { row.val = prev })
	return next.Clone(), nil
}

type idempotencyRepo struct{ tx *memTx }

func (r *idempotencyRepo) Claim(ctx context.Context, rec shared.IdempotencyRecord) (*shared.IdempotencyRecord, error) {
	s := r.tx.store
	k := idemKey{key: rec.Key, accountID: rec.AccountID}

	for {
		s.mu.Lock()
		existing, ok := s.idempotency[k]
		if !ok {
			nr := newRow(rec)
			nr.lock <- struct{}{}
			s.idempotency[k] = nr
			s.mu.Unlock()

			r.tx.adopt(nr.lock)
			r.tx.undo = append(r.tx.undo, func() {
				s.mu.Lock()
				if s.idempotency[k] == nr {
					delete(s.idempotency, k)
				}
				s.mu.Unlock()
				nr.deleted = true
			})
			return nil, nil
		}
		s.mu.Unlock()

		// Wait for the transaction that owns the key, then look again.
		if err := r.tx.acquire(ctx, existing.lock); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "lock idempotency key", err)
		}
		if existing.deleted {
			continue
		}
		if !existing.val.ExpiresAt.After(rec.CreatedAt) {
			prev := existing.val
			existing.val = rec
			r.tx.undo = append(r.tx.undo, func() { existing.val = prev })
			return nil, nil
		}
		out := existing.val
		return &out, nil
	}
}

func (r *idempotencyRepo) Complete(ctx context.Context, key string, accountID, resultID uuid.UUID) error {
	row, err := lockRow(ctx, r.tx, r.tx.store.idempotency, idemKey{key: key, accountID: accountID}, "idempotency key")
	if err != nil {
		return err
	}
	prev := row.val
	row.val.Status = shared.IdempotencyCompleted
	row.val.ResultID = &resultID
	r.tx.undo = append(r.tx.undo, func() { row.val = prev })
	return nil
}

// PurgeExpired drops expired keys that no transaction is holding. It is not
// undone on rollback; an expired key behaves exactly like a missing one.
func (r *idempotencyRepo) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for k, row := range s.idempotency {
		if _, mine := r.tx.held[row.lock]; mine {
			continue
		}
		select {
		case row.lock <- struct{}{}:
		default:
			continue
		}
		if !row.val.ExpiresAt.After(now) {
			delete(s.idempotency, k)
			row.deleted = true
			n++
		}
		<-row.lock
	}
	return n, nil
}
