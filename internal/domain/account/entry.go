package account

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one line of an account's journal. Balance changes always produce one.
type Entry struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Kind         EntryKind
	Amount       Money
	BalanceAfter Money
	Reference    string
	CreatedAt    time.Time
}

func NewEntry(accountID uuid.UUID, kind EntryKind, amount, balanceAfter Money, reference string, now time.Time) Entry {
	return Entry{
		ID:           uuid.New(),
		AccountID:    accountID,
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Reference:    reference,
		CreatedAt:    now,
	}
}

// Reference builders keep journal references greppable.
func AllocationRef(id uuid.UUID) string       { return "allocation:" + id.String() }
func AllocationRefundRef(id uuid.UUID) string { return "allocation-refund:" + id.String() }
func WithdrawalRef(id uuid.UUID) string       { return "withdrawal:" + id.String() }
func WithdrawalRefundRef(id uuid.UUID) string { return "withdrawal-refund:" + id.String() }
func DepositRef(id uuid.UUID) string          { return "deposit:" + id.String() }
func AdminRef(reason string) string           { return "admin:" + reason }
