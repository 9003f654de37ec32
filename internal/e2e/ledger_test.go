//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/e2e"
	resdto "spotlight-ledger/internal/handler/dto/response"
	"spotlight-ledger/internal/testutil/httptest"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) activeCoin(t *testing.T) int {
	t.Helper()
	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/schedule?upcoming=1", nil, "")
	var snap queries.ScheduleSnapshot
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &snap)
	require.NotEmpty(t, snap.Active)
	return snap.Active[0].CoinID
}

func (s *LedgerSuite) TestAllocation() {
	s.Run("正常系: 配分すると残高が減り、キャンセルで戻る", func() {
		t := s.T()
		userID, userToken := s.CreateAccount(t, "alloc@example.com", account.RoleUser, "100.00")
		_, adminToken := s.CreateAccount(t, "admin@example.com", account.RoleAdmin, "0")
		coin := s.activeCoin(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/allocations",
			map[string]any{"coin_id": coin, "amount": "30.00"}, userToken)
		var created resdto.AllocationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.Equal(t, "70.00", created.Balance.String())
		require.Equal(t, "70.00", s.Balance(t, userID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/allocations/"+created.ID.String()+"/cancel", nil, adminToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		require.Equal(t, "100.00", s.Balance(t, userID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/allocations/"+created.ID.String()+"/cancel", nil, adminToken)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "")
		require.Equal(t, "100.00", s.Balance(t, userID))
	})

	s.Run("正常系: 同じIdempotency-Keyの再送は一度だけ引き落とす", func() {
		t := s.T()
		userID, userToken := s.CreateAccount(t, "idem@example.com", account.RoleUser, "100.00")
		coin := s.activeCoin(t)
		body := map[string]any{"coin_id": coin, "amount": "10.00"}
		headers := map[string]string{"Idempotency-Key": "alloc-1"}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/allocations", body, userToken, headers)
		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/allocations", body, userToken, headers)

		var a, b resdto.AllocationResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &a)
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &b)
		require.Equal(t, a.ID, b.ID)
		require.Equal(t, "90.00", s.Balance(t, userID))

		other := map[string]any{"coin_id": coin, "amount": "11.00"}
		rec := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/allocations", other, userToken, headers)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "different request")
	})

	s.Run("異常系: 残高不足は422で残高は変わらない", func() {
		t := s.T()
		userID, userToken := s.CreateAccount(t, "poor@example.com", account.RoleUser, "5.00")
		coin := s.activeCoin(t)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/allocations",
			map[string]any{"coin_id": coin, "amount": "5.01"}, userToken)
		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Insufficient funds")
		require.Equal(t, "5.00", s.Balance(t, userID))
	})
}

func (s *LedgerSuite) TestConcurrentWithdrawals() {
	s.Run("同時出金でも残高はマイナスにならない", func() {
		t := s.T()
		userID, userToken := s.CreateAccount(t, "race@example.com", account.RoleUser, "100.00")

		const workers = 10
		var succeeded, rejected atomic.Int32
		var g errgroup.Group
		for i := range workers {
			g.Go(func() error {
				body := map[string]any{
					"amount":  "30.00",
					"network": "tron",
					"address": fmt.Sprintf("T-address-%d", i),
				}
				rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/withdrawals", body, userToken)
				switch rec.Code {
				case http.StatusCreated:
					succeeded.Add(1)
				case http.StatusUnprocessableEntity:
					rejected.Add(1)
				default:
					return fmt.Errorf("unexpected status %d: %s", rec.Code, rec.Body.String())
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())

		require.Equal(t, int32(3), succeeded.Load())
		require.Equal(t, int32(workers-3), rejected.Load())
		require.Equal(t, "10.00", s.Balance(t, userID))
	})
}

func (s *LedgerSuite) TestWithdrawalAndDepositResolution() {
	s.Run("正常系: 出金の却下で返金され、入金の承認で加算される", func() {
		t := s.T()
		userID, userToken := s.CreateAccount(t, "flow@example.com", account.RoleUser, "50.00")
		_, adminToken := s.CreateAccount(t, "ops@example.com", account.RoleAdmin, "0")

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/withdrawals",
			map[string]any{"amount": "20.00", "network": "bsc", "address": "0xabc"}, userToken)
		var w resdto.WithdrawalResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &w)
		require.Equal(t, "30.00", s.Balance(t, userID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/withdrawals/"+w.ID.String()+"/resolve", map[string]any{"status": "rejected"}, adminToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		require.Equal(t, "50.00", s.Balance(t, userID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/deposits",
			map[string]any{"amount": "25", "network": "ton", "tx_reference": "tx-1"}, userToken)
		var d resdto.DepositResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &d)
		require.Equal(t, "50.00", s.Balance(t, userID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/admin/deposits/"+d.ID.String()+"/resolve", map[string]any{"status": "confirmed"}, adminToken)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
		require.Equal(t, "75.00", s.Balance(t, userID))

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/entries", nil, userToken)
		var page resdto.PageResponse[queries.EntryView]
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &page)
		kinds := make([]string, 0, len(page.Items))
		for _, e := range page.Items {
			kinds = append(kinds, e.Kind)
		}
		if diff := cmp.Diff([]string{"credit", "credit", "debit"}, kinds); diff != "" {
			t.Errorf("entry kinds mismatch (-want +got):\n%s", diff)
		}
	})
}
