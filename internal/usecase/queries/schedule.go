package queries

import (
	"slices"
	"time"

	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/metrics"
)

const (
	MaxUpcomingEvents = 100
	MaxPreviewEvents  = 1000
	MaxPreviewCoins   = 10000
)

var ErrHorizonExceeded = errs.New("requested time is beyond the schedule horizon")

type ScheduleSnapshot struct {
	At        time.Time                `json:"at"`
	Step      time.Duration            `json:"-"`
	StepHours float64                  `json:"step_hours"`
	Active    []schedule.ActiveWindow  `json:"active"`
	Inactive  []int                    `json:"inactive"`
	Upcoming  []schedule.RotationEvent `json:"upcoming"`
}

type CoinStatusView struct {
	CoinID int                    `json:"coin_id"`
	At     time.Time              `json:"at"`
	Active bool                   `json:"active"`
	Window *schedule.ActiveWindow `json:"window,omitempty"`
	// NextActivation is set for inactive coins.
	NextActivation *time.Time `json:"next_activation,omitempty"`
}

type ScheduleQueries interface {
	Snapshot(at time.Time, upcoming int) (*ScheduleSnapshot, error)
	CoinStatus(coinID int, at time.Time) (*CoinStatusView, error)
	Preview(cfg schedule.Config) (*schedule.Result, error)
}

type scheduleQueriesImpl struct {
	state *schedule.State
	clock clock.Clock
}

func NewScheduleQueries(state *schedule.State, clock clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{state: state, clock: clock}
}

func (q *scheduleQueriesImpl) Snapshot(at time.Time, upcoming int) (*ScheduleSnapshot, error) {
	if at.IsZero() {
		at = q.clock.Now()
	}
	upcoming = min(max(upcoming, 0), MaxUpcomingEvents)

	active := q.state.ActiveAt(at)
	if active == nil {
		return nil, ErrHorizonExceeded
	}
	snap := &ScheduleSnapshot{
		At:        at,
		Step:      q.state.Config().Step(),
		StepHours: q.state.Config().Step().Hours(),
		Active:    active,
		Inactive:  q.state.InactiveAt(at),
		Upcoming:  q.state.Upcoming(at, upcoming),
	}
	if snap.Upcoming == nil {
		snap.Upcoming = []schedule.RotationEvent{}
	}
	metrics.ScheduleEvents.Set(float64(q.state.Materialized()))
	return snap, nil
}

func (q *scheduleQueriesImpl) CoinStatus(coinID int, at time.Time) (*CoinStatusView, error) {
	if !q.state.Contains(coinID) {
		return nil, errs.Mark(errs.Newf("coin %d is outside 1..%d", coinID, q.state.Config().TotalCoins), ErrNotFound)
	}
	if at.IsZero() {
		at = q.clock.Now()
	}

	view := &CoinStatusView{CoinID: coinID, At: at}
	if w, ok := q.state.ActiveWindowFor(coinID, at); ok {
		view.Active = true
		view.Window = &w
		return view, nil
	}

	waiting := q.state.InactiveAt(at)
	if waiting == nil {
		return nil, ErrHorizonExceeded
	}
	if pos := slices.Index(waiting, coinID); pos >= 0 {
		for _, ev := range q.state.Upcoming(at, pos+1) {
			if ev.ActivatingCoin == coinID {
				ts := ev.Timestamp
				view.NextActivation = &ts
				break
			}
		}
	}
	return view, nil
}

// Preview runs the generator on an arbitrary configuration without touching the live schedule.
func (q *scheduleQueriesImpl) Preview(cfg schedule.Config) (*schedule.Result, error) {
	if cfg.StartTime.IsZero() {
		cfg.StartTime = q.clock.Now()
	}
	if cfg.EventCount > MaxPreviewEvents {
		return nil, errs.Mark(errs.Newf("eventCount must be at most %d", MaxPreviewEvents), schedule.ErrConfiguration)
	}
	if cfg.TotalCoins > MaxPreviewCoins {
		return nil, errs.Mark(errs.Newf("totalCoins must be at most %d", MaxPreviewCoins), schedule.ErrConfiguration)
	}
	return schedule.Generate(cfg)
}
