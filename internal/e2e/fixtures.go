//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"spotlight-ledger/internal/domain/account"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB truncates every table; there is no reference data to reseed.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, `TRUNCATE idempotency_keys, deposits, withdrawals, allocations, ledger_entries, accounts`)
	return err
}

// CreateAccount inserts an account with an opening balance and returns a bearer token for it.
func (s *SharedSuite) CreateAccount(t *testing.T, email string, role account.Role, balance string) (uuid.UUID, string) {
	t.Helper()

	id := uuid.New()
	now := time.Now().UTC()
	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO accounts (id, email, role, balance, created_at, updated_at) VALUES ($1, $2, $3, $4::numeric, $5, $5)`,
		id, email, role.String(), balance, now)
	require.NoError(t, err)

	token, err := s.Tokens.GenerateToken(id, role)
	require.NoError(t, err)
	return id, token
}

// Balance reads the stored balance as a fixed two-decimal string.
func (s *SharedSuite) Balance(t *testing.T, id uuid.UUID) string {
	t.Helper()

	var balance string
	err := s.DB.QueryRow(context.Background(), `SELECT balance::text FROM accounts WHERE id = $1`, id).Scan(&balance)
	require.NoError(t, err)
	return balance
}
