//go:build unit

package allocation_test

import (
	"testing"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	window = schedule.ActiveWindow{CoinID: 3, ActivatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(48 * time.Hour)}
)

func TestNew(t *testing.T) {
	t.Run("有効期限は窓から複写される", func(t *testing.T) {
		a, err := allocation.New(uuid.New(), 3, account.MustMoney("10"), window, now)
		require.NoError(t, err)
		assert.Equal(t, allocation.StatusActive, a.Status())
		assert.Equal(t, window.ExpiresAt, a.ExpiresAt())
		assert.False(t, a.IsExpired(now))
		assert.True(t, a.IsExpired(window.ExpiresAt))
	})

	t.Run("異なるコインの窓NG", func(t *testing.T) {
		_, err := allocation.New(uuid.New(), 4, account.MustMoney("10"), window, now)
		require.ErrorIs(t, err, allocation.ErrInvalidCoin)
	})

	t.Run("窓の外NG", func(t *testing.T) {
		_, err := allocation.New(uuid.New(), 3, account.MustMoney("10"), window, window.ExpiresAt)
		require.ErrorIs(t, err, allocation.ErrWindowClosed)
	})

	t.Run("ゼロ金額NG", func(t *testing.T) {
		_, err := allocation.New(uuid.New(), 3, account.Zero, window, now)
		require.ErrorIs(t, err, account.ErrNonPositive)
	})
}

func TestTransition(t *testing.T) {
	a, err := allocation.New(uuid.New(), 3, account.MustMoney("10"), window, now)
	require.NoError(t, err)

	pct := decimal.RequireFromString("12.5")
	require.NoError(t, a.Transition(allocation.StatusClosed, &pct, now))
	assert.Equal(t, allocation.StatusClosed, a.Status())
	assert.True(t, a.Percent().Equal(pct))

	require.ErrorIs(t, a.Transition(allocation.StatusCancelled, nil, now), allocation.ErrInvalidTransition)

	b, err := allocation.New(uuid.New(), 3, account.MustMoney("10"), window, now)
	require.NoError(t, err)
	bad := decimal.NewFromInt(5000)
	require.ErrorIs(t, b.Transition(allocation.StatusClosed, &bad, now), allocation.ErrInvalidPercent)
	require.ErrorIs(t, b.Transition(allocation.StatusActive, nil, now), allocation.ErrInvalidTransition)
}
