package schedule

import (
	"container/heap"
	"iter"
	"slices"
	"time"
)

// Generate simulates the rotation from cfg.StartTime and returns the seeded
// partition plus the first cfg.EventCount events.
func Generate(cfg Config) (*Result, error) {
	seq, err := NewSequence(cfg)
	if err != nil {
		return nil, err
	}
	n := cfg.EventCount
	return &Result{
		Metadata: Metadata{
			GeneratedAt:            cfg.StartTime,
			Step:                   cfg.Step(),
			StepHours:              cfg.Step().Hours(),
			ActivationDuration:     cfg.ActivationDuration,
			ActivationDurationDays: cfg.ActivationDuration.Hours() / 24,
			TotalCoins:             cfg.TotalCoins,
			ActiveCoins:            cfg.ActiveCoins,
			EventCount:             n,
		},
		Initial: seq.Initial(),
		Events:  seq.Take(n),
	}, nil
}

// Sequence is a lazily extended, unbounded stream of rotation events.
// It is a pure function of its Config: two sequences built from the same
// Config yield identical events. A Sequence is not safe for concurrent use.
type Sequence struct {
	cfg     Config
	initial InitialState
	open    windowHeap
	queue   []int
	emitted int
}

func NewSequence(cfg Config) (*Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sequence{cfg: cfg}
	s.open = make(windowHeap, 0, cfg.ActiveCoins)
	for k := 1; k <= cfg.ActiveCoins; k++ {
		expiresAt := cfg.StartTime.Add(cfg.offset(k))
		s.open = append(s.open, ActiveWindow{
			CoinID:      k,
			ActivatedAt: expiresAt.Add(-cfg.ActivationDuration),
			ExpiresAt:   expiresAt,
		})
	}
	heap.Init(&s.open)

	s.queue = make([]int, 0, cfg.TotalCoins-cfg.ActiveCoins+1)
	for id := cfg.ActiveCoins + 1; id <= cfg.TotalCoins; id++ {
		s.queue = append(s.queue, id)
	}

	active := slices.Clone([]ActiveWindow(s.open))
	slices.SortFunc(active, compareWindows)
	s.initial = InitialState{Active: active, Inactive: slices.Clone(s.queue)}
	return s, nil
}

func (s *Sequence) Config() Config { return s.cfg }

// Initial returns the seeded partition at StartTime.
func (s *Sequence) Initial() InitialState {
	return InitialState{
		Active:   slices.Clone(s.initial.Active),
		Inactive: slices.Clone(s.initial.Inactive),
	}
}

// Next advances the simulation by one event. It never fails on a valid Config.
func (s *Sequence) Next() (RotationEvent, ActiveWindow) {
	expiring := heap.Pop(&s.open).(ActiveWindow)

	activating := expiring.CoinID
	if len(s.queue) > 0 {
		activating = s.queue[0]
		s.queue = s.queue[1:]
	}
	s.queue = append(s.queue, expiring.CoinID)

	opened := ActiveWindow{
		CoinID:      activating,
		ActivatedAt: expiring.ExpiresAt,
		ExpiresAt:   expiring.ExpiresAt.Add(s.cfg.ActivationDuration),
	}
	heap.Push(&s.open, opened)

	s.emitted++
	return RotationEvent{
		Index:            s.emitted,
		Timestamp:        expiring.ExpiresAt,
		ExpiringCoin:     expiring.CoinID,
		ActivatingCoin:   activating,
		ActivationEndsAt: opened.ExpiresAt,
	}, opened
}

func (s *Sequence) Take(n int) []RotationEvent {
	events := make([]RotationEvent, 0, max(n, 0))
	for range n {
		ev, _ := s.Next()
		events = append(events, ev)
	}
	return events
}

// All yields events until the caller stops ranging.
func (s *Sequence) All() iter.Seq[RotationEvent] {
	return func(yield func(RotationEvent) bool) {
		for {
			ev, _ := s.Next()
			if !yield(ev) {
				return
			}
		}
	}
}

// Until yields every event with a timestamp not after t.
func (s *Sequence) Until(t time.Time) iter.Seq[RotationEvent] {
	return func(yield func(RotationEvent) bool) {
		for len(s.open) > 0 && !s.open[0].ExpiresAt.After(t) {
			ev, _ := s.Next()
			if !yield(ev) {
				return
			}
		}
	}
}

func compareWindows(a, b ActiveWindow) int {
	if c := a.ExpiresAt.Compare(b.ExpiresAt); c != 0 {
		return c
	}
	return a.CoinID - b.CoinID
}

// windowHeap orders open windows by expiry, lowest coin id first on ties.
type windowHeap []ActiveWindow

func (h windowHeap) Len() int           { return len(h) }
func (h windowHeap) Less(i, j int) bool { return compareWindows(h[i], h[j]) < 0 }
func (h windowHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *windowHeap) Push(x any)        { *h = append(*h, x.(ActiveWindow)) }
func (h *windowHeap) Pop() any {
	old := *h
	n := len(old)
	w := old[n-1]
	*h = old[:n-1]
	return w
}
