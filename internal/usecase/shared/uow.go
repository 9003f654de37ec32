package shared

import (
	"context"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/withdrawal"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction. Every write made through tx commits
	// together or not at all. A returned error rolls back.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Accounts() AccountRepository
	Entries() EntryRepository
	Allocations() AllocationRepository
	Withdrawals() WithdrawalRepository
	Deposits() DepositRepository
	Idempotency() IdempotencyRepository
}

// AccountRepository is the ledger's store. Debit and Credit are single atomic
// steps on the account row; callers never read a balance and write it back.
type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) error
	// Debit fails with KindPreconditionFailed when the balance does not cover amount.
	Debit(ctx context.Context, accountID uuid.UUID, amount account.Money, at time.Time) (account.Money, error)
	Credit(ctx context.Context, accountID uuid.UUID, amount account.Money, at time.Time) (account.Money, error)
	Balance(ctx context.Context, accountID uuid.UUID) (account.Money, error)
}

type EntryRepository interface {
	Append(ctx context.Context, entry account.Entry) error
}

type AllocationRepository interface {
	Create(ctx context.Context, a *allocation.Allocation) error
	FindByID(ctx context.Context, id uuid.UUID) (*allocation.Allocation, error)
	// Finish moves an active allocation to a terminal status. It fails with
	// KindPreconditionFailed when the allocation is no longer active.
	Finish(ctx context.Context, id uuid.UUID, to allocation.Status, percent *Percent, at time.Time) (*allocation.Allocation, error)
	ListExpiredActive(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, w *withdrawal.Withdrawal) error
	FindByID(ctx context.Context, id uuid.UUID) (*withdrawal.Withdrawal, error)
	// Resolve moves a pending withdrawal to decision. It fails with
	// KindPreconditionFailed when the withdrawal is already resolved.
	Resolve(ctx context.Context, id uuid.UUID, decision withdrawal.Status, at time.Time) (*withdrawal.Withdrawal, error)
}

type DepositRepository interface {
	Create(ctx context.Context, d *deposit.Deposit) error
	FindByID(ctx context.Context, id uuid.UUID) (*deposit.Deposit, error)
	Resolve(ctx context.Context, id uuid.UUID, decision deposit.Status, at time.Time) (*deposit.Deposit, error)
}

type IdempotencyRepository interface {
	// Claim inserts a processing record for (key, accountID). When the key is
	// already taken it returns the existing record instead.
	Claim(ctx context.Context, rec IdempotencyRecord) (existing *IdempotencyRecord, err error)
	Complete(ctx context.Context, key string, accountID uuid.UUID, resultID uuid.UUID) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
