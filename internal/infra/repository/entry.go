package repository

import (
	"context"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra/sqlstore"
)

type EntryQueries interface {
	InsertLedgerEntry(ctx context.Context, db sqlstore.DBTX, arg sqlstore.LedgerEntries) error
}

type EntryRepository struct {
	queries EntryQueries
	db      sqlstore.DBTX
}

func NewEntryRepository(queries EntryQueries, db sqlstore.DBTX) *EntryRepository {
	return &EntryRepository{queries: queries, db: db}
}

func (r *EntryRepository) Append(ctx context.Context, entry account.Entry) error {
	err := r.queries.InsertLedgerEntry(ctx, r.db, sqlstore.LedgerEntries{
		ID:           entry.ID,
		AccountID:    entry.AccountID,
		Kind:         string(entry.Kind),
		Amount:       entry.Amount.Decimal(),
		BalanceAfter: entry.BalanceAfter.Decimal(),
		Reference:    entry.Reference,
		CreatedAt:    entry.CreatedAt,
	})
	if err != nil {
		return writeErr("failed to append ledger entry", err)
	}
	return nil
}
