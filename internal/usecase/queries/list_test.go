//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWithdrawalReadStore struct {
	mock.Mock
}

func (m *mockWithdrawalReadStore) ListWithdrawals(ctx context.Context, filter queries.ListFilter) ([]queries.WithdrawalView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.WithdrawalView), args.Error(1)
}

type mockAccountReadStore struct {
	mock.Mock
}

func (m *mockAccountReadStore) FindAccount(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AccountView), args.Error(1)
}

func (m *mockAccountReadStore) ListEntries(ctx context.Context, accountID uuid.UUID, filter queries.ListFilter) ([]queries.EntryView, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.EntryView), args.Error(1)
}

func withdrawalRows(n int) []queries.WithdrawalView {
	rows := make([]queries.WithdrawalView, n)
	for i := range rows {
		rows[i] = queries.WithdrawalView{
			ID:        uuid.New(),
			Status:    "pending",
			CreatedAt: start.Add(-time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestWithdrawalQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("limit+1行あれば次カーソルを返す", func(t *testing.T) {
		store := &mockWithdrawalReadStore{}
		rows := withdrawalRows(3)
		store.On("ListWithdrawals", ctx, queries.ListFilter{Status: "pending", Limit: 2}).Return(rows, nil)

		page, err := queries.NewWithdrawalQueries(store).List(ctx, queries.ListParams{Status: "pending", Limit: 2})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		ts, id, err := queries.DecodeBeforeCursor(page.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(ts))
		store.AssertExpectations(t)
	})

	t.Run("カーソルはフィルタに展開される", func(t *testing.T) {
		store := &mockWithdrawalReadStore{}
		before := start.Add(-time.Hour)
		beforeID := uuid.New()
		cursor := queries.EncodeBeforeCursor(before, beforeID)
		want := queries.ListFilter{Limit: queries.DefaultListLimit, BeforeTime: &before, BeforeID: beforeID}
		store.On("ListWithdrawals", ctx, mock.MatchedBy(func(f queries.ListFilter) bool {
			return cmp.Equal(want, f)
		})).Return([]queries.WithdrawalView{}, nil)

		page, err := queries.NewWithdrawalQueries(store).List(ctx, queries.ListParams{Cursor: cursor})

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("上限を超えるlimitは丸められる", func(t *testing.T) {
		store := &mockWithdrawalReadStore{}
		store.On("ListWithdrawals", ctx, queries.ListFilter{Limit: queries.MaxListLimit}).Return(nil, nil)

		_, err := queries.NewWithdrawalQueries(store).List(ctx, queries.ListParams{Limit: 10_000})
		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("不正なステータスとカーソルはInvalidFilter", func(t *testing.T) {
		store := &mockWithdrawalReadStore{}
		q := queries.NewWithdrawalQueries(store)

		_, err := q.List(ctx, queries.ListParams{Status: "lost"})
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
		_, err = q.List(ctx, queries.ListParams{Cursor: "%%%"})
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
		store.AssertNotCalled(t, "ListWithdrawals", mock.Anything, mock.Anything)
	})
}

func TestAccountQueries_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("見つからなければErrNotFound", func(t *testing.T) {
		store := &mockAccountReadStore{}
		store.On("FindAccount", ctx, id).Return(nil, infra.NewRepoErr(infra.KindNotFound, "account not found"))

		_, err := queries.NewAccountQueries(store).Get(ctx, id)
		assert.True(t, errs.Is(err, queries.ErrNotFound))
	})

	t.Run("残高はビューから返す", func(t *testing.T) {
		store := &mockAccountReadStore{}
		view := &queries.AccountView{ID: id, Email: "a@example.com", Role: "user"}
		store.On("FindAccount", ctx, id).Return(view, nil)

		bal, err := queries.NewAccountQueries(store).Balance(ctx, id)
		require.NoError(t, err)
		assert.True(t, bal.IsZero())
	})
}

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeBeforeCursor(queries.EncodeBeforeCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, id, gotID)

	for _, bad := range []string{"", "!!!", "djI6MTIz"} {
		_, _, err := queries.DecodeBeforeCursor(bad)
		assert.Error(t, err, bad)
	}
}
