package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrConfiguration = errors.New("invalid schedule configuration")

const (
	DefaultTotalCoins     = 20
	DefaultActiveCoins    = 15
	DefaultActivationDays = 20
)

type Config struct {
	StartTime          time.Time
	TotalCoins         int
	ActiveCoins        int
	ActivationDuration time.Duration
	// EventCount is the number of events materialized up front; zero yields only the seeded windows.
	EventCount int
}

func DefaultConfig(start time.Time) Config {
	return Config{
		StartTime:          start,
		TotalCoins:         DefaultTotalCoins,
		ActiveCoins:        DefaultActiveCoins,
		ActivationDuration: ActivationDays(DefaultActivationDays),
		EventCount:         DefaultTotalCoins,
	}
}

// ActivationDays converts a fractional day count into a duration.
func ActivationDays(days float64) time.Duration {
	return time.Duration(days * float64(24*time.Hour))
}

func (c Config) Validate() error {
	switch {
	case c.TotalCoins <= 0:
		return configErr("totalCoins must be positive, got %d", c.TotalCoins)
	case c.ActiveCoins <= 0:
		return configErr("activeCoins must be positive, got %d", c.ActiveCoins)
	case c.ActiveCoins >= c.TotalCoins:
		return configErr("activeCoins (%d) must be less than totalCoins (%d)", c.ActiveCoins, c.TotalCoins)
	case c.ActivationDuration <= 0:
		return configErr("activation duration must be positive, got %s", c.ActivationDuration)
	case int64(c.ActivationDuration) < int64(c.ActiveCoins):
		return configErr("activation duration %s is too short to split across %d coins", c.ActivationDuration, c.ActiveCoins)
	case c.EventCount < 0:
		return configErr("eventCount must not be negative, got %d", c.EventCount)
	case c.StartTime.IsZero():
		return configErr("start time is required")
	}
	return nil
}

// Step is the spacing between consecutive rotation events in steady state.
func (c Config) Step() time.Duration {
	return c.ActivationDuration / time.Duration(c.ActiveCoins)
}

// offset returns ActivationDuration*k/ActiveCoins without truncating each step,
// so seeded expiries never drift apart from the steady-state cadence.
func (c Config) offset(k int) time.Duration {
	d := int64(c.ActivationDuration)
	n := int64(c.ActiveCoins)
	kk := int64(k)
	return time.Duration((d/n)*kk + (d%n)*kk/n)
}

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
