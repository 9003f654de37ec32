//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"spotlight-ledger/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const step = 32 * time.Hour

func newDefaultState(t *testing.T) *schedule.State {
	t.Helper()
	s, err := schedule.NewState(schedule.DefaultConfig(t0))
	require.NoError(t, err)
	return s
}

func TestState_IsActive(t *testing.T) {
	s := newDefaultState(t)

	tests := []struct {
		name   string
		coinID int
		at     time.Time
		want   bool
	}{
		{name: "開始時点で1番は有効", coinID: 1, at: t0, want: true},
		{name: "開始時点で16番は無効", coinID: 16, at: t0, want: false},
		{name: "失効時刻ちょうどで1番は無効", coinID: 1, at: t0.Add(step), want: false},
		{name: "失効直前の1番は有効", coinID: 1, at: t0.Add(step - time.Nanosecond), want: true},
		{name: "最初のイベントで16番が有効", coinID: 16, at: t0.Add(step), want: true},
		{name: "範囲外のID", coinID: 21, at: t0, want: false},
		{name: "0番", coinID: 0, at: t0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsActive(tt.coinID, tt.at))
		})
	}
}

func TestState_ActiveWindowFor(t *testing.T) {
	t.Run("窓は開始時に固定される", func(t *testing.T) {
		s := newDefaultState(t)

		w, ok := s.ActiveWindowFor(16, t0.Add(step+time.Hour))
		require.True(t, ok)
		assert.Equal(t, 16, w.CoinID)
		assert.Equal(t, t0.Add(step), w.ActivatedAt)
		assert.Equal(t, t0.Add(step+20*24*time.Hour), w.ExpiresAt)
	})

	t.Run("遠い将来も逐次再生と一致する", func(t *testing.T) {
		cfg := schedule.DefaultConfig(t0)
		s, err := schedule.NewState(cfg)
		require.NoError(t, err)

		seq, err := schedule.NewSequence(cfg)
		require.NoError(t, err)
		open := map[int]schedule.ActiveWindow{}
		for _, w := range seq.Initial().Active {
			open[w.CoinID] = w
		}

		horizon := t0.Add(400 * 24 * time.Hour)
		for ev := range seq.Until(horizon) {
			before := ev.Timestamp.Add(-time.Minute)
			for id := 1; id <= cfg.TotalCoins; id++ {
				want, wantOK := open[id]
				got, gotOK := s.ActiveWindowFor(id, before)
				require.Equal(t, wantOK, gotOK, "coin %d at %s", id, before)
				if wantOK {
					require.Equal(t, want, got)
				}
			}
			delete(open, ev.ExpiringCoin)
			open[ev.ActivatingCoin] = schedule.ActiveWindow{
				CoinID:      ev.ActivatingCoin,
				ActivatedAt: ev.Timestamp,
				ExpiresAt:   ev.ActivationEndsAt,
			}
		}
		assert.Greater(t, s.Materialized(), cfg.TotalCoins)
	})

	t.Run("EventCount0でも必要に応じて延長される", func(t *testing.T) {
		cfg := schedule.DefaultConfig(t0)
		cfg.EventCount = 0
		s, err := schedule.NewState(cfg)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Materialized())

		w, ok := s.ActiveWindowFor(16, t0.Add(step))
		require.True(t, ok)
		assert.Equal(t, t0.Add(step), w.ActivatedAt)
		assert.Positive(t, s.Materialized())
	})
}

func TestState_ActiveAt(t *testing.T) {
	s := newDefaultState(t)

	for _, at := range []time.Time{t0, t0.Add(step), t0.Add(100 * time.Hour), t0.Add(90 * 24 * time.Hour)} {
		active := s.ActiveAt(at)
		require.Len(t, active, 15, "at %s", at)
		for i := 1; i < len(active); i++ {
			assert.True(t, active[i-1].ExpiresAt.Before(active[i].ExpiresAt))
		}
		assert.Len(t, s.InactiveAt(at), 5)
	}
}

func TestState_InactiveAt(t *testing.T) {
	s := newDefaultState(t)

	assert.Equal(t, []int{16, 17, 18, 19, 20}, s.InactiveAt(t0))
	assert.Equal(t, []int{17, 18, 19, 20, 1}, s.InactiveAt(t0.Add(step)))
	assert.Equal(t, []int{18, 19, 20, 1, 2}, s.InactiveAt(t0.Add(2*step)))
}

func TestState_Upcoming(t *testing.T) {
	s := newDefaultState(t)

	events := s.Upcoming(t0, 3)
	require.Len(t, events, 3)
	assert.Equal(t, 1, events[0].Index)
	assert.Equal(t, t0.Add(step), events[0].Timestamp)
	assert.Equal(t, t0.Add(3*step), events[2].Timestamp)

	later := s.Upcoming(t0.Add(step), 2)
	require.Len(t, later, 2)
	assert.Equal(t, 2, later[0].Index)

	far := s.Upcoming(t0.Add(365*24*time.Hour), 5)
	require.Len(t, far, 5)
	assert.True(t, far[0].Timestamp.After(t0.Add(365*24*time.Hour)))

	assert.Nil(t, s.Upcoming(t0, 0))
}

func TestState_ConcurrentQueries(t *testing.T) {
	s := newDefaultState(t)

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			at := t0.Add(time.Duration(i) * 7 * 24 * time.Hour)
			if got := len(s.ActiveAt(at)); got != 15 {
				t.Errorf("active coins at %s = %d", at, got)
			}
			for id := 1; id <= 20; id++ {
				s.IsActive(id, at)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
