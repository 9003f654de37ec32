//go:build unit

package api_test

import (
	"net/http"
	"time"

	"spotlight-ledger/internal/domain/network"
	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/testutil/httptest"
	"spotlight-ledger/internal/usecase/queries"

	"go.uber.org/mock/gomock"
)

func (s *HandlerTestSuite) TestNetworkList() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/networks", nil, "")

	var body []network.Info
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Len(body, 5)
	s.Equal(network.BSC, body[0].Key)
}

func (s *HandlerTestSuite) TestScheduleSnapshot() {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	s.Run("正常系: atとupcomingを省略するとゼロ時刻と既定件数で問い合わせる", func() {
		s.scheduleQs.EXPECT().Snapshot(time.Time{}, 5).
			Return(&queries.ScheduleSnapshot{Inactive: []int{16, 17}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, "")

		var body queries.ScheduleSnapshot
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]int{16, 17}, body.Inactive)
	})

	s.Run("正常系: atはUTCに正規化される", func() {
		s.scheduleQs.EXPECT().Snapshot(at, 3).
			Return(&queries.ScheduleSnapshot{At: at}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/schedule?at=2025-01-02T12:04:05%2B09:00&upcoming=3", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("異常系: 不正なatは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule?at=yesterday", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid at")
	})

	s.Run("異常系: 不正なupcomingは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule?upcoming=many", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid upcoming")
	})

	s.Run("異常系: 計算範囲外は400", func() {
		s.scheduleQs.EXPECT().Snapshot(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrHorizonExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "horizon")
	})
}

func (s *HandlerTestSuite) TestScheduleCoinStatus() {
	s.Run("正常系: アクティブなコインはウィンドウを返す", func() {
		window := schedule.ActiveWindow{
			CoinID:      4,
			ActivatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpiresAt:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		}
		s.scheduleQs.EXPECT().CoinStatus(4, time.Time{}).
			Return(&queries.CoinStatusView{CoinID: 4, Active: true, Window: &window}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule/coins/4", nil, "")

		var body queries.CoinStatusView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Active)
		s.Require().NotNil(body.Window)
		s.True(window.ExpiresAt.Equal(body.Window.ExpiresAt))
	})

	s.Run("異常系: 数値でないIDは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule/coins/btc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid coinId")
	})

	s.Run("異常系: 範囲外のコインは404", func() {
		s.scheduleQs.EXPECT().CoinStatus(99, gomock.Any()).
			Return(nil, errs.Mark(errs.New("coin 99 is outside 1..20"), queries.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/schedule/coins/99", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *HandlerTestSuite) TestSchedulePreview() {
	s.Run("正常系: 省略した項目は既定値で補完される", func() {
		s.scheduleQs.EXPECT().Preview(gomock.Any()).
			DoAndReturn(func(cfg schedule.Config) (*schedule.Result, error) {
				s.Equal(5, cfg.TotalCoins)
				s.Equal(schedule.DefaultActiveCoins, cfg.ActiveCoins)
				s.Equal(schedule.ActivationDays(schedule.DefaultActivationDays), cfg.ActivationDuration)
				s.Equal(5, cfg.EventCount)
				return &schedule.Result{
					Metadata: schedule.Metadata{StepHours: 32, ActivationDurationDays: 20},
					Events:   []schedule.RotationEvent{{Index: 0}},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/schedule/preview",
			map[string]any{"total_coins": 5}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body["events"], 1)
		meta, ok := body["metadata"].(map[string]any)
		s.Require().True(ok)
		s.Equal(float64(32), meta["step_hours"])
		s.Equal(float64(20), meta["activation_duration_days"])
		s.NotContains(meta, "step")
	})

	s.Run("正常系: event_count 0はそのまま渡される", func() {
		s.scheduleQs.EXPECT().Preview(gomock.Any()).
			DoAndReturn(func(cfg schedule.Config) (*schedule.Result, error) {
				s.Equal(0, cfg.EventCount)
				return &schedule.Result{Events: []schedule.RotationEvent{}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/schedule/preview",
			map[string]any{"event_count": 0}, "")

		var body schedule.Result
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Events)
	})

	s.Run("異常系: 負のevent_countは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/schedule/preview",
			map[string]any{"event_count": -1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("異常系: 設定エラーは400", func() {
		s.scheduleQs.EXPECT().Preview(gomock.Any()).
			Return(nil, errs.Wrap(schedule.ErrConfiguration, "active coins exceed total")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/schedule/preview",
			map[string]any{"total_coins": 3, "active_coins": 4}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid schedule configuration")
	})
}
