package bootstrap

import (
	"log/slog"

	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/pkg/config"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/patch"

	"go.uber.org/fx"
)

var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewScheduleState,
	),
)

// NewScheduleState builds the rotation once at startup; a bad configuration stops the app.
func NewScheduleState(cfg config.Config, logger *slog.Logger) (*schedule.State, error) {
	start, err := cfg.Schedule.Start()
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrConfiguration)
	}

	sc := schedule.Config{
		StartTime:          start,
		TotalCoins:         cfg.Schedule.TotalCoins,
		ActiveCoins:        cfg.Schedule.ActiveCoins,
		ActivationDuration: schedule.ActivationDays(cfg.Schedule.ActivationDays),
		EventCount:         patch.Coalesce(cfg.Schedule.EventCount, cfg.Schedule.TotalCoins),
	}
	state, err := schedule.NewState(sc)
	if err != nil {
		return nil, errs.Wrap(err, "build rotation schedule")
	}

	logger.Info("ローテーションスケジュールを生成しました",
		"start", start,
		"total_coins", sc.TotalCoins,
		"active_coins", sc.ActiveCoins,
		"step", sc.Step())
	return state, nil
}
