//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func requestInput(id uuid.UUID, amount string) commands.RequestWithdrawalInput {
	return commands.RequestWithdrawalInput{
		AccountID: id,
		Amount:    account.MustMoney(amount),
		Network:   "tron",
		Address:   "TXYZ1234",
	}
}

func TestWithdrawal_RequestAndResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("申請で残高が減り却下で戻る", func(t *testing.T) {
		f := newFixture(t)
		id := f.fundedAccount(t, "100")

		res, err := f.withdrawals.RequestWithdrawal(ctx, requestInput(id, "40"))
		require.NoError(t, err)
		assert.Equal(t, withdrawal.StatusPending, res.Withdrawal.Status())
		assert.Equal(t, "60.00", f.balance(t, id))

		rejected, err := f.withdrawals.Resolve(ctx, res.Withdrawal.ID(), withdrawal.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, withdrawal.StatusRejected, rejected.Withdrawal.Status())
		assert.Equal(t, "100.00", f.balance(t, id))

		_, err = f.withdrawals.Resolve(ctx, res.Withdrawal.ID(), withdrawal.StatusCompleted)
		assert.True(t, errs.Is(err, commands.ErrWithdrawalAlreadyResolved))
		assert.Equal(t, "100.00", f.balance(t, id))
	})

	t.Run("完了では残高は戻らない", func(t *testing.T) {
		f := newFixture(t)
		id := f.fundedAccount(t, "100")
		res, err := f.withdrawals.RequestWithdrawal(ctx, requestInput(id, "40"))
		require.NoError(t, err)

		done, err := f.withdrawals.Resolve(ctx, res.Withdrawal.ID(), withdrawal.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, "60.00", done.Balance.String())
	})

	t.Run("残高不足は申請自体が作られない", func(t *testing.T) {
		f := newFixture(t)
		id := f.fundedAccount(t, "10")
		_, err := f.withdrawals.RequestWithdrawal(ctx, requestInput(id, "40"))
		assert.True(t, errs.Is(err, commands.ErrInsufficientFunds))
		assert.Equal(t, "10.00", f.balance(t, id))
	})

	t.Run("入力検証", func(t *testing.T) {
		f := newFixture(t)
		id := f.fundedAccount(t, "100")
		cases := map[string]func(*commands.RequestWithdrawalInput){
			"unknown network": func(in *commands.RequestWithdrawalInput) { in.Network = "doge" },
			"empty address":   func(in *commands.RequestWithdrawalInput) { in.Address = "  " },
			"long comment":    func(in *commands.RequestWithdrawalInput) { in.Comment = strings.Repeat("a", 501) },
			"long key":        func(in *commands.RequestWithdrawalInput) { in.IdempotencyKey = strings.Repeat("k", 129) },
		}
		for name, mutate := range cases {
			in := requestInput(id, "1")
			mutate(&in)
			_, err := f.withdrawals.RequestWithdrawal(ctx, in)
			assert.True(t, errs.Is(err, commands.ErrInvalidInput), name)
		}
		assert.Equal(t, "100.00", f.balance(t, id))
	})
}

func TestWithdrawal_ConcurrentResolveRefundsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.fundedAccount(t, "100")
	res, err := f.withdrawals.RequestWithdrawal(ctx, requestInput(id, "40"))
	require.NoError(t, err)

	var g errgroup.Group
	errsOut := make([]error, 8)
	for i := range errsOut {
		g.Go(func() error {
			_, errsOut[i] = f.withdrawals.Resolve(ctx, res.Withdrawal.ID(), withdrawal.StatusRejected)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	ok := 0
	for _, err := range errsOut {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, errs.Is(err, commands.ErrWithdrawalAlreadyResolved))
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, "100.00", f.balance(t, id))
}

func TestWithdrawal_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.fundedAccount(t, "100")
	other := f.fundedAccount(t, "0")
	res, err := f.withdrawals.RequestWithdrawal(ctx, requestInput(owner, "40"))
	require.NoError(t, err)

	_, err = f.withdrawals.Cancel(ctx, res.Withdrawal.ID(), other)
	assert.True(t, errs.Is(err, commands.ErrWithdrawalNotFound))

	cancelled, err := f.withdrawals.Cancel(ctx, res.Withdrawal.ID(), owner)
	require.NoError(t, err)
	assert.Equal(t, withdrawal.StatusRejected, cancelled.Withdrawal.Status())
	assert.Equal(t, "100.00", f.balance(t, owner))
}

func TestWithdrawal_IdempotentReplay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.fundedAccount(t, "100")
	in := requestInput(id, "40")
	in.IdempotencyKey = "wd-1"

	first, err := f.withdrawals.RequestWithdrawal(ctx, in)
	require.NoError(t, err)
	second, err := f.withdrawals.RequestWithdrawal(ctx, in)
	require.NoError(t, err)

	assert.True(t, second.IsReplayed)
	assert.Equal(t, first.Withdrawal.ID(), second.Withdrawal.ID())
	assert.Equal(t, "60.00", f.balance(t, id))
}
