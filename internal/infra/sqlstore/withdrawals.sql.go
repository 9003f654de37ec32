package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, account_id, amount, network, address, comment, status, created_at, resolved_at`

func scanWithdrawal(row pgx.Row) (Withdrawals, error) {
	var w Withdrawals
	err := row.Scan(&w.ID, &w.AccountID, &w.Amount, &w.Network, &w.Address, &w.Comment, &w.Status, &w.CreatedAt, &w.ResolvedAt)
	return w, err
}

const insertWithdrawal = `
INSERT INTO withdrawals (` + withdrawalColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertWithdrawal(ctx context.Context, db DBTX, arg Withdrawals) error {
	_, err := db.Exec(ctx, insertWithdrawal,
		arg.ID, arg.AccountID, arg.Amount, arg.Network, arg.Address, arg.Comment, arg.Status, arg.CreatedAt, arg.ResolvedAt)
	return err
}

const getWithdrawalForUpdate = `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`

func (q *Queries) GetWithdrawalForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Withdrawals, error) {
	return scanWithdrawal(db.QueryRow(ctx, getWithdrawalForUpdate, id))
}

type ResolveParams struct {
	ID         uuid.UUID
	Status     string
	ResolvedAt time.Time
}

const resolveWithdrawal = `
UPDATE withdrawals SET status = $2, resolved_at = $3
WHERE id = $1 AND status = 'pending'
RETURNING ` + withdrawalColumns

func (q *Queries) ResolveWithdrawal(ctx context.Context, db DBTX, arg ResolveParams) (Withdrawals, error) {
	return scanWithdrawal(db.QueryRow(ctx, resolveWithdrawal, arg.ID, arg.Status, arg.ResolvedAt))
}

const withdrawalExists = `SELECT EXISTS (SELECT 1 FROM withdrawals WHERE id = $1)`

func (q *Queries) WithdrawalExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, withdrawalExists, id).Scan(&ok)
	return ok, err
}

var listWithdrawals = `SELECT ` + withdrawalColumns + ` FROM withdrawals` + fmt.Sprintf(listWhere, "status")

func (q *Queries) ListWithdrawals(ctx context.Context, db DBTX, arg ListParams) ([]Withdrawals, error) {
	rows, err := db.Query(ctx, listWithdrawals, arg.args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Withdrawals
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}
