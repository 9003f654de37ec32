package schedule

import "time"

// ActiveWindow is the half-open interval [ActivatedAt, ExpiresAt) during which a coin accepts allocations.
type ActiveWindow struct {
	CoinID      int       `json:"coin_id"`
	ActivatedAt time.Time `json:"activated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (w ActiveWindow) Contains(t time.Time) bool {
	return !t.Before(w.ActivatedAt) && t.Before(w.ExpiresAt)
}

type RotationEvent struct {
	Index            int       `json:"index"`
	Timestamp        time.Time `json:"timestamp"`
	ExpiringCoin     int       `json:"expiring_coin"`
	ActivatingCoin   int       `json:"activating_coin"`
	ActivationEndsAt time.Time `json:"activation_ends_at"`
}

type InitialState struct {
	// Active is sorted by ExpiresAt ascending.
	Active []ActiveWindow `json:"active"`
	// Inactive is in queue order.
	Inactive []int `json:"inactive"`
}

// Metadata reports durations as fractional hours and days on the wire.
type Metadata struct {
	GeneratedAt            time.Time     `json:"generated_at"`
	Step                   time.Duration `json:"-"`
	StepHours              float64       `json:"step_hours"`
	ActivationDuration     time.Duration `json:"-"`
	ActivationDurationDays float64       `json:"activation_duration_days"`
	TotalCoins             int           `json:"total_coins"`
	ActiveCoins            int           `json:"active_coins"`
	EventCount             int           `json:"event_count"`
}

type Result struct {
	Metadata Metadata        `json:"metadata"`
	Initial  InitialState    `json:"initial"`
	Events   []RotationEvent `json:"events"`
}
