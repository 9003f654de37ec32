package account

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidRole      = errors.New("invalid role")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrNonPositive      = errors.New("amount must be positive")
	ErrAmountPrecision  = errors.New("amount has more than 2 decimal places")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrBalanceTooLow    = errors.New("balance does not cover amount")
	ErrAmountOutOfRange = errors.New("amount out of range")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

const MoneyScale = 2

// maxMoney matches NUMERIC(20,2).
var maxMoney = decimal.New(1, 18)

// Money is a non-negative fixed-point amount with two decimal places.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{amount: decimal.Zero}

func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(MoneyScale)) {
		return Money{}, ErrAmountPrecision
	}
	if d.GreaterThanOrEqual(maxMoney) {
		return Money{}, ErrAmountOutOfRange
	}
	return Money{amount: d.Truncate(MoneyScale)}, nil
}

// NewPositiveMoney is NewMoney for amounts that move funds.
func NewPositiveMoney(d decimal.Decimal) (Money, error) {
	m, err := NewMoney(d)
	if err != nil {
		return Money{}, err
	}
	if m.IsZero() {
		return Money{}, ErrNonPositive
	}
	return m, nil
}

// ParseMoney accepts "12.34" and the comma form "12,34".
func ParseMoney(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d)
}

func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) String() string           { return m.amount.StringFixed(MoneyScale) }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) Cmp(o Money) int          { return m.amount.Cmp(o.amount) }
func (m Money) LessThan(o Money) bool    { return m.amount.LessThan(o.amount) }
func (m Money) Equal(o Money) bool       { return m.amount.Equal(o.amount) }

// Add fails instead of leaving the NUMERIC(20,2) range.
func (m Money) Add(o Money) (Money, error) {
	sum := m.amount.Add(o.amount)
	if sum.GreaterThanOrEqual(maxMoney) {
		return Money{}, ErrAmountOutOfRange
	}
	return Money{amount: sum}, nil
}

// Sub fails instead of going negative.
func (m Money) Sub(o Money) (Money, error) {
	if m.amount.LessThan(o.amount) {
		return Money{}, ErrBalanceTooLow
	}
	return Money{amount: m.amount.Sub(o.amount)}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return ErrInvalidAmount
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
