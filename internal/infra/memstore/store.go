// Package memstore is an in-process record store. Every row carries its own
// lock; a transaction holds the locks it takes until it commits or rolls back,
// so writes to the same row are totally ordered and different rows proceed in
// parallel.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type rowLock chan struct{}

type row[T any] struct {
	lock    rowLock
	val     T
	deleted bool
}

func newRow[T any](v T) *row[T] {
	return &row[T]{lock: make(rowLock, 1), val: v}
}

type idemKey struct {
	key       string
	accountID uuid.UUID
}

type Store struct {
	mu          sync.RWMutex
	accounts    map[uuid.UUID]*row[*account.Account]
	emails      map[string]uuid.UUID
	entries     []account.Entry
	allocations map[uuid.UUID]*row[*allocation.Allocation]
	withdrawals map[uuid.UUID]*row[*withdrawal.Withdrawal]
	deposits    map[uuid.UUID]*row[*deposit.Deposit]
	idempotency map[idemKey]*row[shared.IdempotencyRecord]
}

func New() *Store {
	return &Store{
		accounts:    make(map[uuid.UUID]*row[*account.Account]),
		emails:      make(map[string]uuid.UUID),
		allocations: make(map[uuid.UUID]*row[*allocation.Allocation]),
		withdrawals: make(map[uuid.UUID]*row[*withdrawal.Withdrawal]),
		deposits:    make(map[uuid.UUID]*row[*deposit.Deposit]),
		idempotency: make(map[idemKey]*row[shared.IdempotencyRecord]),
	}
}

// Within implements shared.UnitOfWork. There are no retries: a failed
// transaction leaves no trace and the error goes back to the caller.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memTx{store: s, held: make(map[rowLock]struct{})}
	defer func() {
		if !tx.done {
			tx.rollback()
		}
	}()

	if err = fn(ctx, tx); err == nil {
		err = ctx.Err()
	}
	if err != nil {
		tx.rollback()
		return err
	}
	tx.commit()
	return nil
}

type memTx struct {
	store    *Store
	held     map[rowLock]struct{}
	order    []rowLock
	undo     []func()
	onCommit []func(s *Store)
	done     bool
}

func (t *memTx) Accounts() shared.AccountRepository        { return &accountRepo{tx: t} }
func (t *memTx) Entries() shared.EntryRepository           { return &entryRepo{tx: t} }
func (t *memTx) Allocations() shared.AllocationRepository  { return &allocationRepo{tx: t} }
func (t *memTx) Withdrawals() shared.WithdrawalRepository  { return &withdrawalRepo{tx: t} }
func (t *memTx) Deposits() shared.DepositRepository        { return &depositRepo{tx: t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository { return &idempotencyRepo{tx: t} }

// acquire takes l for the rest of the transaction.
func (t *memTx) acquire(ctx context.Context, l rowLock) error {
	if _, ok := t.held[l]; ok {
		return nil
	}
	select {
	case l <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	t.held[l] = struct{}{}
	t.order = append(t.order, l)
	return nil
}

// adopt records a lock the transaction took while creating a row.
func (t *memTx) adopt(l rowLock) {
	t.held[l] = struct{}{}
	t.order = append(t.order, l)
}

// peek runs read under l without keeping it past the call.
func (t *memTx) peek(ctx context.Context, l rowLock, read func()) error {
	if _, ok := t.held[l]; ok {
		read()
		return nil
	}
	return peek(ctx, l, read)
}

func (t *memTx) commit() {
	if len(t.onCommit) > 0 {
		t.store.mu.Lock()
		for _, fn := range t.onCommit {
			fn(t.store)
		}
		t.store.mu.Unlock()
	}
	t.release()
}

func (t *memTx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	if len(t.undo) > 0 {
		slog.Debug("memstore transaction rolled back", "undone", len(t.undo))
	}
	t.release()
}

func (t *memTx) release() {
	for i := len(t.order) - 1; i >= 0; i-- {
		<-t.order[i]
	}
	t.order = nil
	t.held = nil
	t.undo = nil
	t.onCommit = nil
	t.done = true
}

func peek(ctx context.Context, l rowLock, read func()) error {
	select {
	case l <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	read()
	<-l
	return nil
}
