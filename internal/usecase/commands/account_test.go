//go:build unit

package commands_test

import (
	"context"
	"testing"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("ロール未指定はuserで残高0", func(t *testing.T) {
		f := newFixture(t)
		acc, err := f.accounts.Open(ctx, "Alice@Example.com", "")
		require.NoError(t, err)
		assert.Equal(t, account.RoleUser, acc.Role())
		assert.Equal(t, "alice@example.com", acc.Email().Value())
		assert.Equal(t, "0.00", f.balance(t, acc.ID()))
	})

	t.Run("同じメールは重複エラー", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.accounts.Open(ctx, "bob@example.com", "admin")
		require.NoError(t, err)
		_, err = f.accounts.Open(ctx, "BOB@example.com", "user")
		assert.True(t, errs.Is(err, commands.ErrDuplicateAccount))
	})

	t.Run("不正な入力", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.accounts.Open(ctx, "not-an-email", "")
		assert.True(t, errs.Is(err, commands.ErrInvalidInput))
		_, err = f.accounts.Open(ctx, "carol@example.com", "root")
		assert.True(t, errs.Is(err, commands.ErrInvalidInput))
	})
}
