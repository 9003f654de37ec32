package sqlstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const insertAccount = `
INSERT INTO accounts (id, email, role, balance, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) InsertAccount(ctx context.Context, db DBTX, arg Accounts) error {
	_, err := db.Exec(ctx, insertAccount, arg.ID, arg.Email, arg.Role, arg.Balance, arg.CreatedAt, arg.UpdatedAt)
	return err
}

type BalanceChangeParams struct {
	ID     uuid.UUID
	Amount decimal.Decimal
	At     time.Time
}

// The balance check and the write are one statement; no row means the
// account is missing or would go negative.
const debitAccount = `
UPDATE accounts SET balance = balance - $2, updated_at = $3
WHERE id = $1 AND balance >= $2
RETURNING balance`

func (q *Queries) DebitAccount(ctx context.Context, db DBTX, arg BalanceChangeParams) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := db.QueryRow(ctx, debitAccount, arg.ID, arg.Amount, arg.At).Scan(&balance)
	return balance, err
}

// No row means the account is missing or the balance would leave NUMERIC(20,2).
const creditAccount = `
UPDATE accounts SET balance = balance + $2, updated_at = $3
WHERE id = $1 AND balance + $2 < 1000000000000000000
RETURNING balance`

func (q *Queries) CreditAccount(ctx context.Context, db DBTX, arg BalanceChangeParams) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := db.QueryRow(ctx, creditAccount, arg.ID, arg.Amount, arg.At).Scan(&balance)
	return balance, err
}

const accountExists = `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`

func (q *Queries) AccountExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, accountExists, id).Scan(&ok)
	return ok, err
}

const getAccount = `
SELECT id, email, role, balance, created_at, updated_at
FROM accounts WHERE id = $1`

func (q *Queries) GetAccount(ctx context.Context, db DBTX, id uuid.UUID) (Accounts, error) {
	var a Accounts
	err := db.QueryRow(ctx, getAccount, id).Scan(&a.ID, &a.Email, &a.Role, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
