//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/network"
	"spotlight-ledger/internal/domain/withdrawal"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/testutil/dtomap"
	"spotlight-ledger/internal/testutil/httptest"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func buildWithdrawal(s *HandlerTestSuite) *withdrawal.Withdrawal {
	addr, err := withdrawal.NewAddress("TQEVdQEawnvGHh4Kmp167USEn3PcCms7in")
	s.Require().NoError(err)
	comment, err := withdrawal.NewComment("weekly payout")
	s.Require().NoError(err)
	w, err := withdrawal.New(s.userID, account.MustMoney("40.00"), network.Tron, addr, comment, time.Now())
	s.Require().NoError(err)
	return w
}

func (s *HandlerTestSuite) TestCreateWithdrawal() {
	url := "/api/withdrawals"
	reqBody := map[string]any{
		"amount":  "40.00",
		"network": "tron",
		"address": "TQEVdQEawnvGHh4Kmp167USEn3PcCms7in",
		"comment": "weekly payout",
	}

	s.Run("success: 201 with the pending withdrawal", func() {
		w := buildWithdrawal(s)
		s.withdrawalCmds.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RequestWithdrawalInput) (*commands.WithdrawalResult, error) {
				s.Equal(s.userID, in.AccountID)
				s.Equal("40.00", in.Amount.String())
				s.Equal("tron", in.Network)
				s.Equal("weekly payout", in.Comment)
				s.Empty(in.IdempotencyKey)
				return &commands.WithdrawalResult{Withdrawal: w, Balance: account.MustMoney("60.00")}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)

		var body resdto.WithdrawalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body.Status)
		s.Equal("tron", body.Network)
		s.Equal("60.00", body.Balance.String())
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "address missing", mutate: dtomap.Field("address", nil)},
			{name: "address too long", mutate: dtomap.Field("address", strings.Repeat("a", 129))},
			{name: "comment too long", mutate: dtomap.Field("comment", strings.Repeat("c", 501))},
			{name: "network missing", mutate: dtomap.Field("network", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := dtomap.From(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: insufficient funds is 422", func() {
		s.withdrawalCmds.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInsufficientFunds).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Insufficient funds")
	})

	s.Run("error: an unknown network rejected by the usecase is 400", func() {
		s.withdrawalCmds.EXPECT().RequestWithdrawal(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidInput).Times(1)

		body := dtomap.From(s.T(), reqBody, dtomap.Field("network", "dogechain"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *HandlerTestSuite) TestCancelWithdrawal() {
	w := buildWithdrawal(s)
	url := "/api/withdrawals/" + w.ID().String() + "/cancel"

	s.Run("success: the owner cancels their request", func() {
		s.withdrawalCmds.EXPECT().Cancel(gomock.Any(), w.ID(), s.userID).
			Return(&commands.WithdrawalResult{Withdrawal: w, Balance: account.MustMoney("100.00")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, userToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: someone else's withdrawal is 404", func() {
		s.withdrawalCmds.EXPECT().Cancel(gomock.Any(), w.ID(), s.userID).
			Return(nil, commands.ErrWithdrawalNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Withdrawal not found")
	})
}

func (s *HandlerTestSuite) TestResolveWithdrawal() {
	id := uuid.New()
	url := "/api/admin/withdrawals/" + id.String() + "/resolve"

	s.Run("success: rejection reports the refunded balance", func() {
		w := buildWithdrawal(s)
		s.Require().NoError(w.Resolve(withdrawal.StatusRejected, time.Now()))
		s.withdrawalCmds.EXPECT().Resolve(gomock.Any(), id, withdrawal.StatusRejected).
			Return(&commands.WithdrawalResult{Withdrawal: w, Balance: account.MustMoney("100.00")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "rejected"}, adminToken)

		var body resdto.WithdrawalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rejected", body.Status)
		s.NotNil(body.ResolvedAt)
	})

	s.Run("error: pending is not a decision", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "pending"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status")
	})

	s.Run("error: 409 when already resolved", func() {
		s.withdrawalCmds.EXPECT().Resolve(gomock.Any(), id, withdrawal.StatusCompleted).
			Return(nil, commands.ErrWithdrawalAlreadyResolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "completed"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been resolved")
	})

	s.Run("success: admins list by status", func() {
		s.withdrawalQs.EXPECT().List(gomock.Any(), queries.ListParams{Status: "pending"}).
			Return(&queries.Page[queries.WithdrawalView]{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/withdrawals?status=pending", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
