//go:build unit

package api_test

import (
	"net/http"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/network"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/testutil/httptest"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func (s *HandlerTestSuite) TestCreateDeposit() {
	url := "/api/deposits"
	reqBody := map[string]any{"amount": "50", "network": "bsc", "tx_reference": "0xabc"}

	s.Run("success: 201 and the balance is untouched", func() {
		dep, err := deposit.New(s.userID, account.MustMoney("50"), network.BSC, "0xabc", time.Now())
		s.Require().NoError(err)
		s.depositCmds.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dep, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, userToken)

		var body resdto.DepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body.Status)
		s.Equal("50.00", body.Amount.String())
		s.Nil(body.Balance)
	})

	s.Run("error: 400 without a tx reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"amount": "50", "network": "bsc"}, userToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: the caller lists their own deposits", func() {
		s.depositQs.EXPECT().List(gomock.Any(), queries.ListParams{AccountID: &s.userID}).
			Return(&queries.Page[queries.DepositView]{Items: []queries.DepositView{{TxReference: "0xabc"}}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, userToken)

		var body resdto.PageResponse[queries.DepositView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("0xabc", body.Items[0].TxReference)
	})
}

func (s *HandlerTestSuite) TestResolveDeposit() {
	id := uuid.New()
	url := "/api/admin/deposits/" + id.String() + "/resolve"

	s.Run("success: confirmation credits the account", func() {
		dep, err := deposit.New(s.userID, account.MustMoney("50"), network.BSC, "0xabc", time.Now())
		s.Require().NoError(err)
		s.Require().NoError(dep.Resolve(deposit.StatusConfirmed, time.Now()))
		s.depositCmds.EXPECT().Resolve(gomock.Any(), id, deposit.StatusConfirmed).
			Return(&commands.DepositResult{Deposit: dep, Balance: account.MustMoney("150.00")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "confirmed"}, adminToken)

		var body resdto.DepositResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
		s.Equal("150.00", body.Balance.String())
	})

	s.Run("error: 409 when already resolved", func() {
		s.depositCmds.EXPECT().Resolve(gomock.Any(), id, deposit.StatusRejected).
			Return(nil, commands.ErrDepositAlreadyResolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "rejected"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Deposit has already been resolved")
	})

	s.Run("error: 404 for an unknown deposit", func() {
		s.depositCmds.EXPECT().Resolve(gomock.Any(), id, deposit.StatusConfirmed).
			Return(nil, commands.ErrDepositNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "confirmed"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Deposit not found")
	})
}
