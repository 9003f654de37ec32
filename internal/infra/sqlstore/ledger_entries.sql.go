package sqlstore

import (
	"context"
	"fmt"
)

const insertLedgerEntry = `
INSERT INTO ledger_entries (id, account_id, kind, amount, balance_after, reference, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertLedgerEntry(ctx context.Context, db DBTX, arg LedgerEntries) error {
	_, err := db.Exec(ctx, insertLedgerEntry,
		arg.ID, arg.AccountID, arg.Kind, arg.Amount, arg.BalanceAfter, arg.Reference, arg.CreatedAt)
	return err
}

var listLedgerEntries = `
SELECT id, account_id, kind, amount, balance_after, reference, created_at
FROM ledger_entries` + fmt.Sprintf(listWhere, "kind")

func (q *Queries) ListLedgerEntries(ctx context.Context, db DBTX, arg ListParams) ([]LedgerEntries, error) {
	rows, err := db.Query(ctx, listLedgerEntries, arg.args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LedgerEntries
	for rows.Next() {
		var e LedgerEntries
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.BalanceAfter, &e.Reference, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
