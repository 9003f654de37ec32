//go:build unit

package withdrawal_test

import (
	"testing"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/network"
	"spotlight-ledger/internal/domain/withdrawal"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type input struct {
	amount  string
	network network.Network
	address string
	comment string
}

func validInput() input {
	return input{amount: "40", network: network.Tron, address: "TQEVdQEawnvGHh4Kmp167USEn3PcCms7in", comment: "payout"}
}

func build(in input) (*withdrawal.Withdrawal, error) {
	addr, err := withdrawal.NewAddress(in.address)
	if err != nil {
		return nil, err
	}
	comment, err := withdrawal.NewComment(in.comment)
	if err != nil {
		return nil, err
	}
	return withdrawal.New(uuid.New(), account.MustMoney(in.amount), in.network, addr, comment, now)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*input)
		errIs  error
	}{
		{name: "正常系", mutate: func(*input) {}},
		{name: "金額ゼロNG", mutate: func(in *input) { in.amount = "0" }, errIs: account.ErrNonPositive},
		{name: "未知のネットワークNG", mutate: func(in *input) { in.network = "btc" }, errIs: network.ErrUnknownNetwork},
		{name: "アドレス空NG", mutate: func(in *input) { in.address = "   " }, errIs: withdrawal.ErrAddressRequired},
		{name: "コメント長すぎNG", mutate: func(in *input) { in.comment = string(make([]rune, 501)) }, errIs: withdrawal.ErrCommentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			w, err := build(in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, withdrawal.StatusPending, w.Status())
			assert.Nil(t, w.ResolvedAt())
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("一度だけ解決できる", func(t *testing.T) {
		w, err := build(validInput())
		require.NoError(t, err)

		require.NoError(t, w.Resolve(withdrawal.StatusRejected, now))
		assert.Equal(t, withdrawal.StatusRejected, w.Status())
		require.NotNil(t, w.ResolvedAt())

		err = w.Resolve(withdrawal.StatusCompleted, now)
		require.ErrorIs(t, err, withdrawal.ErrAlreadyResolved)
		assert.Equal(t, withdrawal.StatusRejected, w.Status())
	})

	t.Run("pendingへの解決はNG", func(t *testing.T) {
		w, err := build(validInput())
		require.NoError(t, err)
		require.ErrorIs(t, w.Resolve(withdrawal.StatusPending, now), withdrawal.ErrInvalidDecision)
	})

	t.Run("決定のパース", func(t *testing.T) {
		_, err := withdrawal.ParseDecision("pending")
		require.ErrorIs(t, err, withdrawal.ErrInvalidDecision)

		d, err := withdrawal.ParseDecision("rejected")
		require.NoError(t, err)
		assert.True(t, withdrawal.RefundsOnResolve(d))
		assert.False(t, withdrawal.RefundsOnResolve(withdrawal.StatusCompleted))
	})
}
