package schedule

import (
	"cmp"
	"slices"
	"sort"
	"sync"
	"time"
)

// MaxMaterializedEvents bounds how far a State extends itself on demand.
const MaxMaterializedEvents = 1 << 18

// State answers "which coins are active at t" for any t, replaying the
// rotation in timestamp order and extending the replay lazily.
// It is safe for concurrent use.
type State struct {
	cfg     Config
	initial InitialState

	mu      sync.RWMutex
	seq     *Sequence
	events  []RotationEvent
	windows map[int][]ActiveWindow // per coin, ordered by ActivatedAt
}

func NewState(cfg Config) (*State, error) {
	seq, err := NewSequence(cfg)
	if err != nil {
		return nil, err
	}

	s := &State{
		cfg:     cfg,
		initial: seq.Initial(),
		seq:     seq,
		windows: make(map[int][]ActiveWindow, cfg.TotalCoins),
	}
	for _, w := range s.initial.Active {
		s.windows[w.CoinID] = append(s.windows[w.CoinID], w)
	}
	for range cfg.EventCount {
		s.advance()
	}
	return s, nil
}

func (s *State) Config() Config { return s.cfg }

func (s *State) Initial() InitialState {
	return InitialState{
		Active:   slices.Clone(s.initial.Active),
		Inactive: slices.Clone(s.initial.Inactive),
	}
}

// Contains reports whether coinID belongs to the universe.
func (s *State) Contains(coinID int) bool {
	return coinID >= 1 && coinID <= s.cfg.TotalCoins
}

func (s *State) IsActive(coinID int, at time.Time) bool {
	_, ok := s.ActiveWindowFor(coinID, at)
	return ok
}

// ActiveWindowFor returns the window of coinID that contains at, if any.
func (s *State) ActiveWindowFor(coinID int, at time.Time) (ActiveWindow, bool) {
	if !s.Contains(coinID) || !s.ensure(at) {
		return ActiveWindow{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return windowAt(s.windows[coinID], at)
}

// ActiveAt lists the open windows at t, sorted by ExpiresAt.
func (s *State) ActiveAt(at time.Time) []ActiveWindow {
	if !s.ensure(at) {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	active := make([]ActiveWindow, 0, s.cfg.ActiveCoins)
	for id := 1; id <= s.cfg.TotalCoins; id++ {
		if w, ok := windowAt(s.windows[id], at); ok {
			active = append(active, w)
		}
	}
	slices.SortFunc(active, compareWindows)
	return active
}

// InactiveAt lists the coins waiting at t in the order they will activate.
func (s *State) InactiveAt(at time.Time) []int {
	if !s.ensure(at) {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	type waiting struct {
		id       int
		lastSeen time.Time
	}
	var queue []waiting
	for id := 1; id <= s.cfg.TotalCoins; id++ {
		ws := s.windows[id]
		if _, ok := windowAt(ws, at); ok {
			continue
		}
		var last time.Time
		for _, w := range ws {
			if w.ExpiresAt.After(at) {
				break
			}
			last = w.ExpiresAt
		}
		queue = append(queue, waiting{id: id, lastSeen: last})
	}
	slices.SortStableFunc(queue, func(a, b waiting) int {
		if c := a.lastSeen.Compare(b.lastSeen); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	ids := make([]int, len(queue))
	for i, q := range queue {
		ids[i] = q.id
	}
	return ids
}

// Upcoming returns up to n events strictly after at.
func (s *State) Upcoming(at time.Time, n int) []RotationEvent {
	if n <= 0 {
		return nil
	}
	for {
		s.mu.RLock()
		i := sort.Search(len(s.events), func(i int) bool { return s.events[i].Timestamp.After(at) })
		if len(s.events)-i >= n {
			out := slices.Clone(s.events[i : i+n])
			s.mu.RUnlock()
			return out
		}
		s.mu.RUnlock()

		s.mu.Lock()
		if len(s.events) >= MaxMaterializedEvents {
			s.mu.Unlock()
			return nil
		}
		s.advance()
		s.mu.Unlock()
	}
}

// Materialized reports how many events the state currently holds.
func (s *State) Materialized() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// ensure materializes every event with a timestamp not after at.
// It reports false when at lies beyond the materialization bound.
func (s *State) ensure(at time.Time) bool {
	s.mu.RLock()
	covered := s.coveredLocked(at)
	s.mu.RUnlock()
	if covered {
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.coveredLocked(at) {
		if len(s.events) >= MaxMaterializedEvents {
			return false
		}
		s.advance()
	}
	return true
}

func (s *State) coveredLocked(at time.Time) bool {
	return s.seq.open[0].ExpiresAt.After(at)
}

// advance must be called with mu held for writing, or before the State is shared.
func (s *State) advance() {
	ev, opened := s.seq.Next()
	s.events = append(s.events, ev)
	s.windows[opened.CoinID] = append(s.windows[opened.CoinID], opened)
}

func windowAt(ws []ActiveWindow, at time.Time) (ActiveWindow, bool) {
	// last window that opened at or before at
	i := sort.Search(len(ws), func(i int) bool { return ws[i].ActivatedAt.After(at) }) - 1
	if i < 0 {
		return ActiveWindow{}, false
	}
	if w := ws[i]; w.Contains(at) {
		return w, true
	}
	return ActiveWindow{}, false
}
