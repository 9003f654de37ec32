package allocation

import (
	"errors"
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus     = errors.New("invalid allocation status")
	ErrInvalidCoin       = errors.New("invalid coin id")
	ErrWindowClosed      = errors.New("activation window does not cover the allocation time")
	ErrInvalidTransition = errors.New("allocation is not active")
	ErrInvalidPercent    = errors.New("percent must be between -100 and 1000")
)

// Allocation commits funds to a coin until the activation window it was made in expires.
// ExpiresAt is fixed at creation.
type Allocation struct {
	id        uuid.UUID
	accountID uuid.UUID
	coinID    int
	amount    account.Money
	percent   *decimal.Decimal
	status    Status
	createdAt time.Time
	expiresAt time.Time
	closedAt  *time.Time
}

func New(accountID uuid.UUID, coinID int, amount account.Money, window schedule.ActiveWindow, now time.Time) (*Allocation, error) {
	if coinID <= 0 || window.CoinID != coinID {
		return nil, ErrInvalidCoin
	}
	if amount.IsZero() {
		return nil, account.ErrNonPositive
	}
	if !window.Contains(now) {
		return nil, ErrWindowClosed
	}
	return &Allocation{
		id:        uuid.New(),
		accountID: accountID,
		coinID:    coinID,
		amount:    amount,
		status:    StatusActive,
		createdAt: now,
		expiresAt: window.ExpiresAt,
	}, nil
}

func Reconstruct(
	id, accountID uuid.UUID,
	coinID int,
	amount account.Money,
	percent *decimal.Decimal,
	status Status,
	createdAt, expiresAt time.Time,
	closedAt *time.Time,
) *Allocation {
	return &Allocation{
		id:        id,
		accountID: accountID,
		coinID:    coinID,
		amount:    amount,
		percent:   percent,
		status:    status,
		createdAt: createdAt,
		expiresAt: expiresAt,
		closedAt:  closedAt,
	}
}

func (a *Allocation) ID() uuid.UUID             { return a.id }
func (a *Allocation) AccountID() uuid.UUID      { return a.accountID }
func (a *Allocation) CoinID() int               { return a.coinID }
func (a *Allocation) Amount() account.Money     { return a.amount }
func (a *Allocation) Percent() *decimal.Decimal { return a.percent }
func (a *Allocation) Status() Status            { return a.status }
func (a *Allocation) CreatedAt() time.Time      { return a.createdAt }
func (a *Allocation) ExpiresAt() time.Time      { return a.expiresAt }
func (a *Allocation) ClosedAt() *time.Time      { return a.closedAt }

func (a *Allocation) IsExpired(at time.Time) bool {
	return !at.Before(a.expiresAt)
}

// Transition moves an active allocation into a terminal status.
func (a *Allocation) Transition(to Status, percent *decimal.Decimal, now time.Time) error {
	if a.status != StatusActive || !to.IsTerminal() {
		return ErrInvalidTransition
	}
	if percent != nil {
		if err := ValidatePercent(*percent); err != nil {
			return err
		}
	}
	a.status = to
	a.percent = percent
	a.closedAt = &now
	return nil
}

var (
	minPercent = decimal.NewFromInt(-100)
	maxPercent = decimal.NewFromInt(1000)
)

func ValidatePercent(p decimal.Decimal) error {
	if p.LessThan(minPercent) || p.GreaterThan(maxPercent) {
		return ErrInvalidPercent
	}
	return nil
}

func (a *Allocation) Clone() *Allocation {
	c := *a
	return &c
}
