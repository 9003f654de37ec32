// Package sqlstore holds the SQL for every table and the row types it scans into.
package sqlstore

import (
	"time"

	"spotlight-ledger/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type DBTX = db.DBTX

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

type Accounts struct {
	ID        uuid.UUID
	Email     string
	Role      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type LedgerEntries struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Kind         string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Reference    string
	CreatedAt    time.Time
}

type Allocations struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	CoinID    int32
	Amount    decimal.Decimal
	Percent   decimal.NullDecimal
	Status    string
	CreatedAt time.Time
	ExpiresAt time.Time
	ClosedAt  pgtype.Timestamptz
}

type Withdrawals struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Amount     decimal.Decimal
	Network    string
	Address    string
	Comment    string
	Status     string
	CreatedAt  time.Time
	ResolvedAt pgtype.Timestamptz
}

type Deposits struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	Network     string
	TxReference string
	Status      string
	CreatedAt   time.Time
	ResolvedAt  pgtype.Timestamptz
}

type IdempotencyKeys struct {
	Key         string
	AccountID   uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    pgtype.UUID
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// ListParams is shared by every keyset-paginated list query. NULL fields do not filter.
type ListParams struct {
	AccountID  pgtype.UUID
	Status     pgtype.Text
	BeforeTime pgtype.Timestamptz
	BeforeID   pgtype.UUID
	Limit      int32
}

func (p ListParams) args() []any {
	return []any{p.AccountID, p.Status, p.BeforeTime, p.BeforeID, p.Limit}
}

// listWhere expects ListParams.args() as $1..$5.
const listWhere = `
WHERE ($1::uuid IS NULL OR account_id = $1)
  AND ($2::text IS NULL OR %s = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`
