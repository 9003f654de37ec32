package request

import (
	"time"

	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/pkg/patch"
)

// PreviewRequest omitted fields fall back to the default 20/15/20 configuration.
// An omitted event_count means one event per coin; an explicit 0 yields none.
type PreviewRequest struct {
	StartTime      *time.Time `json:"start_time"`
	TotalCoins     *int       `json:"total_coins"`
	ActiveCoins    *int       `json:"active_coins"`
	ActivationDays *float64   `json:"activation_days"`
	EventCount     *int       `json:"event_count" binding:"omitempty,min=0"`
}

func (r PreviewRequest) ToConfig() schedule.Config {
	var start time.Time
	if r.StartTime != nil {
		start = r.StartTime.UTC()
	}
	cfg := schedule.DefaultConfig(start)
	cfg.TotalCoins = patch.Coalesce(r.TotalCoins, cfg.TotalCoins)
	cfg.ActiveCoins = patch.Coalesce(r.ActiveCoins, cfg.ActiveCoins)
	cfg.EventCount = patch.Coalesce(r.EventCount, cfg.TotalCoins)
	if r.ActivationDays != nil {
		cfg.ActivationDuration = schedule.ActivationDays(*r.ActivationDays)
	}
	return cfg
}
