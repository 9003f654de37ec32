package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const depositColumns = `id, account_id, amount, network, tx_reference, status, created_at, resolved_at`

func scanDeposit(row pgx.Row) (Deposits, error) {
	var d Deposits
	err := row.Scan(&d.ID, &d.AccountID, &d.Amount, &d.Network, &d.TxReference, &d.Status, &d.CreatedAt, &d.ResolvedAt)
	return d, err
}

const insertDeposit = `
INSERT INTO deposits (` + depositColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) InsertDeposit(ctx context.Context, db DBTX, arg Deposits) error {
	_, err := db.Exec(ctx, insertDeposit,
		arg.ID, arg.AccountID, arg.Amount, arg.Network, arg.TxReference, arg.Status, arg.CreatedAt, arg.ResolvedAt)
	return err
}

const getDepositForUpdate = `SELECT ` + depositColumns + ` FROM deposits WHERE id = $1 FOR UPDATE`

func (q *Queries) GetDepositForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Deposits, error) {
	return scanDeposit(db.QueryRow(ctx, getDepositForUpdate, id))
}

const resolveDeposit = `
UPDATE deposits SET status = $2, resolved_at = $3
WHERE id = $1 AND status = 'pending'
RETURNING ` + depositColumns

func (q *Queries) ResolveDeposit(ctx context.Context, db DBTX, arg ResolveParams) (Deposits, error) {
	return scanDeposit(db.QueryRow(ctx, resolveDeposit, arg.ID, arg.Status, arg.ResolvedAt))
}

const depositExists = `SELECT EXISTS (SELECT 1 FROM deposits WHERE id = $1)`

func (q *Queries) DepositExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, depositExists, id).Scan(&ok)
	return ok, err
}

var listDeposits = `SELECT ` + depositColumns + ` FROM deposits` + fmt.Sprintf(listWhere, "status")

func (q *Queries) ListDeposits(ctx context.Context, db DBTX, arg ListParams) ([]Deposits, error) {
	rows, err := db.Query(ctx, listDeposits, arg.args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Deposits
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
