//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"spotlight-ledger/internal/domain/account"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/testutil/httptest"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *HandlerTestSuite) TestMe() {
	s.Run("success: returns the caller's account", func() {
		view := &queries.AccountView{ID: s.userID, Email: "a@example.com", Role: "user", Balance: account.MustMoney("12.50")}
		s.accountQs.EXPECT().Get(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me", nil, userToken)

		var body queries.AccountView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.ID)
		s.Equal("12.50", body.Balance.String())
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with an unknown token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me", nil, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 404 when the account is gone", func() {
		s.accountQs.EXPECT().Get(gomock.Any(), s.userID).Return(nil, queries.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *HandlerTestSuite) TestEntries() {
	s.Run("success: forwards paging parameters", func() {
		s.accountQs.EXPECT().
			Entries(gomock.Any(), s.userID, queries.ListParams{Limit: 10, Cursor: "abc"}).
			Return(&queries.Page[queries.EntryView]{
				Items:      []queries.EntryView{{Kind: "debit"}, {Kind: "credit"}},
				NextCursor: "next",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me/entries?limit=10&cursor=abc", nil, userToken)

		var body resdto.PageResponse[queries.EntryView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: 400 for a malformed limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me/entries?limit=-1", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 for a bad cursor", func() {
		s.accountQs.EXPECT().Entries(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("bad cursor"), queries.ErrInvalidFilter)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/me/entries?cursor=zzz", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid list filter")
	})
}

func (s *HandlerTestSuite) TestOpenAccount() {
	url := "/api/admin/accounts"
	req := map[string]any{"email": "new@example.com", "role": "user"}

	s.Run("success: admin opens an account", func() {
		email, _ := account.NewEmail("new@example.com")
		acc := account.NewAccount(email, account.RoleUser, time.Now())
		s.accountCmds.EXPECT().Open(gomock.Any(), "new@example.com", "user").Return(acc, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, adminToken)

		var body resdto.AccountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(acc.ID(), body.ID)
		s.Equal("0.00", body.Balance.String())
	})

	s.Run("error: 403 for a regular user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []map[string]any{
			{"role": "user"},
			{"email": "not-an-email"},
			{"email": "new@example.com", "role": "root"},
		}
		for _, body := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, adminToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: 409 on a duplicate email", func() {
		s.accountCmds.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateAccount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Account already exists")
	})
}

func (s *HandlerTestSuite) TestAdjustBalance() {
	target := uuid.New()
	body := map[string]any{"amount": "15.25", "reason": "bonus"}

	s.Run("success: credit records an admin reference", func() {
		s.ledgerCmds.EXPECT().Credit(gomock.Any(), target, gomock.Any(), account.AdminRef("bonus")).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, amount account.Money, _ string) (account.Money, error) {
				s.Equal("15.25", amount.String())
				return account.MustMoney("115.25"), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/accounts/"+target.String()+"/credit", body, adminToken)

		var res resdto.BalanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(target, res.AccountID)
		s.Equal("115.25", res.Balance.String())
	})

	s.Run("error: debit beyond the balance is 422", func() {
		s.ledgerCmds.EXPECT().Debit(gomock.Any(), target, gomock.Any(), gomock.Any()).
			Return(account.Money{}, commands.ErrInsufficientFunds).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/accounts/"+target.String()+"/debit", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Insufficient funds")
	})

	s.Run("error: 400 for an amount with three decimals", func() {
		bad := map[string]any{"amount": "1.005", "reason": "bonus"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/accounts/"+target.String()+"/credit", bad, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid amount")
	})

	s.Run("error: 400 for a malformed account id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/accounts/xyz/credit", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: storage outage is 503, anything else 500", func() {
		s.ledgerCmds.EXPECT().Credit(gomock.Any(), target, gomock.Any(), gomock.Any()).
			Return(account.Money{}, errs.Mark(errors.New("dial tcp"), commands.ErrStorageUnavailable)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/accounts/"+target.String()+"/credit", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")

		s.ledgerCmds.EXPECT().Credit(gomock.Any(), target, gomock.Any(), gomock.Any()).
			Return(account.Money{}, errors.New("boom")).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/accounts/"+target.String()+"/credit", body, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
