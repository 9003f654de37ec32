package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const allocationColumns = `id, account_id, coin_id, amount, percent, status, created_at, expires_at, closed_at`

func scanAllocation(row pgx.Row) (Allocations, error) {
	var a Allocations
	err := row.Scan(&a.ID, &a.AccountID, &a.CoinID, &a.Amount, &a.Percent, &a.Status, &a.CreatedAt, &a.ExpiresAt, &a.ClosedAt)
	return a, err
}

const insertAllocation = `
INSERT INTO allocations (` + allocationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertAllocation(ctx context.Context, db DBTX, arg Allocations) error {
	_, err := db.Exec(ctx, insertAllocation,
		arg.ID, arg.AccountID, arg.CoinID, arg.Amount, arg.Percent, arg.Status, arg.CreatedAt, arg.ExpiresAt, arg.ClosedAt)
	return err
}

const getAllocationForUpdate = `SELECT ` + allocationColumns + ` FROM allocations WHERE id = $1 FOR UPDATE`

func (q *Queries) GetAllocationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Allocations, error) {
	return scanAllocation(db.QueryRow(ctx, getAllocationForUpdate, id))
}

type FinishAllocationParams struct {
	ID       uuid.UUID
	Status   string
	Percent  decimal.NullDecimal
	ClosedAt time.Time
}

const finishAllocation = `
UPDATE allocations SET status = $2, percent = $3, closed_at = $4
WHERE id = $1 AND status = 'active'
RETURNING ` + allocationColumns

func (q *Queries) FinishAllocation(ctx context.Context, db DBTX, arg FinishAllocationParams) (Allocations, error) {
	return scanAllocation(db.QueryRow(ctx, finishAllocation, arg.ID, arg.Status, arg.Percent, arg.ClosedAt))
}

const allocationExists = `SELECT EXISTS (SELECT 1 FROM allocations WHERE id = $1)`

func (q *Queries) AllocationExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, allocationExists, id).Scan(&ok)
	return ok, err
}

const listExpiredActiveAllocations = `
SELECT id FROM allocations
WHERE status = 'active' AND expires_at <= $1
ORDER BY expires_at, id
LIMIT $2`

func (q *Queries) ListExpiredActiveAllocations(ctx context.Context, db DBTX, now time.Time, limit int32) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listExpiredActiveAllocations, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

var listAllocations = `SELECT ` + allocationColumns + ` FROM allocations` + fmt.Sprintf(listWhere, "status")

func (q *Queries) ListAllocations(ctx context.Context, db DBTX, arg ListParams) ([]Allocations, error) {
	rows, err := db.Query(ctx, listAllocations, arg.args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Allocations
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
