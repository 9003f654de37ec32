package queries

import (
	"time"

	"spotlight-ledger/internal/domain/account"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountView struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Role      string        `json:"role"`
	Balance   account.Money `json:"balance"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type EntryView struct {
	ID           uuid.UUID     `json:"id"`
	AccountID    uuid.UUID     `json:"account_id"`
	Kind         string        `json:"kind"`
	Amount       account.Money `json:"amount"`
	BalanceAfter account.Money `json:"balance_after"`
	Reference    string        `json:"reference"`
	CreatedAt    time.Time     `json:"created_at"`
}

type AllocationView struct {
	ID        uuid.UUID        `json:"id"`
	AccountID uuid.UUID        `json:"account_id"`
	CoinID    int              `json:"coin_id"`
	Amount    account.Money    `json:"amount"`
	Percent   *decimal.Decimal `json:"percent,omitempty"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
	ClosedAt  *time.Time       `json:"closed_at,omitempty"`
}

type WithdrawalView struct {
	ID         uuid.UUID     `json:"id"`
	AccountID  uuid.UUID     `json:"account_id"`
	Amount     account.Money `json:"amount"`
	Network    string        `json:"network"`
	Address    string        `json:"address"`
	Comment    string        `json:"comment"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

type DepositView struct {
	ID          uuid.UUID     `json:"id"`
	AccountID   uuid.UUID     `json:"account_id"`
	Amount      account.Money `json:"amount"`
	Network     string        `json:"network"`
	TxReference string        `json:"tx_reference"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ResolvedAt  *time.Time    `json:"resolved_at,omitempty"`
}

// ListFilter is what read stores receive; rows come back newest first.
type ListFilter struct {
	AccountID *uuid.UUID
	Status    string
	// Limit is already clamped; stores fetch Limit+1 rows to detect a next page.
	Limit int
	// Rows strictly older than (BeforeTime, BeforeID) when set.
	BeforeTime *time.Time
	BeforeID   uuid.UUID
}

// ListParams is what callers send.
type ListParams struct {
	AccountID *uuid.UUID
	Status    string
	Limit     int
	Cursor    string
}

type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}
