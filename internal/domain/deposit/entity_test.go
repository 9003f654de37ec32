//go:build unit

package deposit_test

import (
	"strings"
	"testing"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/network"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		network   network.Network
		reference string
		errIs     error
	}{
		{name: "正常系", amount: "25.50", network: network.BSC, reference: "  0xabc  "},
		{name: "金額ゼロNG", amount: "0", network: network.BSC, errIs: account.ErrNonPositive},
		{name: "未知のネットワークNG", amount: "10", network: "btc", errIs: network.ErrUnknownNetwork},
		{name: "参照長すぎNG", amount: "10", network: network.ETH, reference: strings.Repeat("x", 201), errIs: deposit.ErrReferenceTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := deposit.New(uuid.New(), account.MustMoney(tt.amount), tt.network, tt.reference, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, deposit.StatusPending, d.Status())
			assert.Equal(t, "0xabc", d.TxReference())
			assert.Nil(t, d.ResolvedAt())
		})
	}
}

func TestResolve(t *testing.T) {
	newDeposit := func(t *testing.T) *deposit.Deposit {
		t.Helper()
		d, err := deposit.New(uuid.New(), account.MustMoney("10"), network.TON, "", now)
		require.NoError(t, err)
		return d
	}

	t.Run("確定は一度だけ", func(t *testing.T) {
		d := newDeposit(t)
		require.NoError(t, d.Resolve(deposit.StatusConfirmed, now))
		assert.Equal(t, deposit.StatusConfirmed, d.Status())
		require.NotNil(t, d.ResolvedAt())

		require.ErrorIs(t, d.Resolve(deposit.StatusRejected, now), deposit.ErrAlreadyResolved)
		assert.Equal(t, deposit.StatusConfirmed, d.Status())
	})

	t.Run("pendingへの解決はNG", func(t *testing.T) {
		d := newDeposit(t)
		require.ErrorIs(t, d.Resolve(deposit.StatusPending, now), deposit.ErrInvalidDecision)
	})

	t.Run("確定のみ残高に加算", func(t *testing.T) {
		assert.True(t, deposit.CreditsOnResolve(deposit.StatusConfirmed))
		assert.False(t, deposit.CreditsOnResolve(deposit.StatusRejected))

		_, err := deposit.ParseDecision("pending")
		require.ErrorIs(t, err, deposit.ErrInvalidDecision)
		_, err = deposit.ParseStatus("approved")
		require.ErrorIs(t, err, deposit.ErrInvalidStatus)
	})
}
