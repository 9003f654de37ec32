//go:build unit

package api_test

import (
	"context"
	"net/http"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/testutil/dtomap"
	"spotlight-ledger/internal/testutil/httptest"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func buildAllocation(accountID uuid.UUID, status allocation.Status) *allocation.Allocation {
	created := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	return allocation.Reconstruct(uuid.New(), accountID, 3, account.MustMoney("25.00"), nil,
		status, created, created.Add(48*time.Hour), nil)
}

func (s *HandlerTestSuite) TestCreateAllocation() {
	url := "/api/allocations"
	reqBody := map[string]any{"coin_id": 3, "amount": "25.00"}

	s.Run("success: 201 with the balance after the debit", func() {
		alloc := buildAllocation(s.userID, allocation.StatusActive)
		s.allocationCmds.EXPECT().Allocate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.AllocateInput) (*commands.AllocationResult, error) {
				s.Equal(s.userID, in.AccountID)
				s.Equal(3, in.CoinID)
				s.Equal("25.00", in.Amount.String())
				s.Equal("key-1", in.IdempotencyKey)
				s.True(in.At.IsZero())
				return &commands.AllocationResult{Allocation: alloc, Balance: account.MustMoney("75.00")}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, userToken,
			map[string]string{"Idempotency-Key": "key-1"})

		var body resdto.AllocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(alloc.ID(), body.ID)
		s.Equal("active", body.Status)
		s.Require().NotNil(body.Balance)
		s.Equal("75.00", body.Balance.String())
	})

	s.Run("success: a replay answers 200", func() {
		alloc := buildAllocation(s.userID, allocation.StatusActive)
		s.allocationCmds.EXPECT().Allocate(gomock.Any(), gomock.Any()).
			Return(&commands.AllocationResult{Allocation: alloc, Balance: account.MustMoney("75.00"), IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, userToken,
			map[string]string{"Idempotency-Key": "key-1"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
			msg    string
		}{
			{name: "coin_id missing", mutate: dtomap.Field("coin_id", nil), msg: "Invalid request format"},
			{name: "coin_id zero", mutate: dtomap.Field("coin_id", 0), msg: "Invalid request format"},
			{name: "amount missing", mutate: dtomap.Field("amount", nil), msg: "Invalid request format"},
			{name: "amount not a number", mutate: dtomap.Field("amount", "ten"), msg: "Invalid amount"},
			{name: "amount negative", mutate: dtomap.Field("amount", "-1"), msg: "Invalid amount"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := dtomap.From(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, userToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{"unknown coin", commands.ErrUnknownCoin, http.StatusNotFound, "Unknown coin"},
			{"inactive coin", commands.ErrCoinNotActive, http.StatusConflict, "Coin is not active"},
			{"insufficient funds", commands.ErrInsufficientFunds, http.StatusUnprocessableEntity, "Insufficient funds"},
			{"key in flight", commands.ErrIdempotencyInProgress, http.StatusConflict, "still in progress"},
			{"key reused", commands.ErrIdempotencyMismatch, http.StatusConflict, "different request"},
			{"account missing", commands.ErrAccountNotFound, http.StatusNotFound, "Account not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.allocationCmds.EXPECT().Allocate(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

func (s *HandlerTestSuite) TestListAllocations() {
	page := &queries.Page[queries.AllocationView]{Items: []queries.AllocationView{{CoinID: 3}}}

	s.Run("success: a user sees only their own allocations", func() {
		s.allocationQs.EXPECT().List(gomock.Any(), queries.ListParams{AccountID: &s.userID, Status: "active"}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/allocations?status=active", nil, userToken)

		var body resdto.PageResponse[queries.AllocationView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Count)
	})

	s.Run("success: admins list across accounts", func() {
		s.allocationQs.EXPECT().List(gomock.Any(), queries.ListParams{Limit: 20}).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/allocations?limit=20", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown status is 400", func() {
		s.allocationQs.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/allocations?status=open", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid list filter")
	})
}

func (s *HandlerTestSuite) TestFinishAllocation() {
	alloc := buildAllocation(s.userID, allocation.StatusActive)
	base := "/api/admin/allocations/" + alloc.ID().String()

	s.Run("success: cancel refunds and reports the balance", func() {
		cancelled := buildAllocation(s.userID, allocation.StatusCancelled)
		s.allocationCmds.EXPECT().Cancel(gomock.Any(), alloc.ID()).
			Return(&commands.AllocationResult{Allocation: cancelled, Balance: account.MustMoney("100.00")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", nil, adminToken)

		var body resdto.AllocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Equal("100.00", body.Balance.String())
	})

	s.Run("success: close with a percent", func() {
		pct := decimal.RequireFromString("12.5")
		closed := allocation.Reconstruct(alloc.ID(), s.userID, 3, alloc.Amount(), &pct,
			allocation.StatusClosed, alloc.CreatedAt(), alloc.ExpiresAt(), nil)
		s.allocationCmds.EXPECT().Close(gomock.Any(), alloc.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, percent *decimal.Decimal) (*allocation.Allocation, error) {
				s.Require().NotNil(percent)
				s.True(pct.Equal(*percent))
				return closed, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/close", map[string]any{"percent": "12.5"}, adminToken)

		var body resdto.AllocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("closed", body.Status)
	})

	s.Run("success: close without a body", func() {
		s.allocationCmds.EXPECT().Close(gomock.Any(), alloc.ID(), (*decimal.Decimal)(nil)).Return(alloc, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/close", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a malformed percent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/close", map[string]any{"percent": "lots"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid percent")
	})

	s.Run("error: 409 when already finished", func() {
		s.allocationCmds.EXPECT().Cancel(gomock.Any(), alloc.ID()).Return(nil, commands.ErrAllocationNotActive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer active")
	})

	s.Run("error: 403 for a regular user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", nil, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
