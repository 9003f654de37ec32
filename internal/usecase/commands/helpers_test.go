//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/infra/memstore"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	store       *memstore.Store
	clock       *clock.MockClock
	state       *schedule.State
	accounts    commands.AccountCommands
	ledger      commands.LedgerCommands
	allocations commands.AllocationCommands
	withdrawals commands.WithdrawalCommands
	deposits    commands.DepositCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	state, err := schedule.NewState(schedule.DefaultConfig(start))
	require.NoError(t, err)

	store := memstore.New()
	clk := clock.NewMockClock(start.Add(time.Hour))
	return &fixture{
		store:       store,
		clock:       clk,
		state:       state,
		accounts:    commands.NewAccountUseCase(store, clk),
		ledger:      commands.NewLedgerUseCase(store, clk),
		allocations: commands.NewAllocationUseCase(store, state, clk),
		withdrawals: commands.NewWithdrawalUseCase(store, clk),
		deposits:    commands.NewDepositUseCase(store, clk),
	}
}

// fundedAccount opens an account and credits it through the ledger.
func (f *fixture) fundedAccount(t *testing.T, balance string) uuid.UUID {
	t.Helper()
	acc, err := f.accounts.Open(context.Background(), uuid.NewString()[:8]+"@example.com", "")
	require.NoError(t, err)
	if balance != "0" {
		_, err = f.ledger.Credit(context.Background(), acc.ID(), account.MustMoney(balance), account.AdminRef("seed"))
		require.NoError(t, err)
	}
	return acc.ID()
}

func (f *fixture) balance(t *testing.T, id uuid.UUID) string {
	t.Helper()
	b, err := f.ledger.ReadBalance(context.Background(), id)
	require.NoError(t, err)
	return b.String()
}

func (f *fixture) readStore() *memstore.ReadStore {
	return memstore.NewReadStore(f.store)
}

func (f *fixture) entries(t *testing.T, id uuid.UUID) []queries.EntryView {
	t.Helper()
	rows, err := f.readStore().ListEntries(context.Background(), id, queries.ListFilter{Limit: queries.MaxListLimit})
	require.NoError(t, err)
	return rows
}
