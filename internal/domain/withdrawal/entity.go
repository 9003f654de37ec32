package withdrawal

import (
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/network"

	"github.com/google/uuid"
)

// Withdrawal is a reservation: its amount left the balance when it was requested.
type Withdrawal struct {
	id         uuid.UUID
	accountID  uuid.UUID
	amount     account.Money
	network    network.Network
	address    Address
	comment    Comment
	status     Status
	createdAt  time.Time
	resolvedAt *time.Time
}

func New(accountID uuid.UUID, amount account.Money, nw network.Network, address Address, comment Comment, now time.Time) (*Withdrawal, error) {
	if amount.IsZero() {
		return nil, account.ErrNonPositive
	}
	if !nw.IsValid() {
		return nil, network.ErrUnknownNetwork
	}
	if address.Value() == "" {
		return nil, ErrAddressRequired
	}
	return &Withdrawal{
		id:        uuid.New(),
		accountID: accountID,
		amount:    amount,
		network:   nw,
		address:   address,
		comment:   comment,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func Reconstruct(
	id, accountID uuid.UUID,
	amount account.Money,
	nw network.Network,
	address Address,
	comment Comment,
	status Status,
	createdAt time.Time,
	resolvedAt *time.Time,
) *Withdrawal {
	return &Withdrawal{
		id:         id,
		accountID:  accountID,
		amount:     amount,
		network:    nw,
		address:    address,
		comment:    comment,
		status:     status,
		createdAt:  createdAt,
		resolvedAt: resolvedAt,
	}
}

func (w *Withdrawal) ID() uuid.UUID            { return w.id }
func (w *Withdrawal) AccountID() uuid.UUID     { return w.accountID }
func (w *Withdrawal) Amount() account.Money    { return w.amount }
func (w *Withdrawal) Network() network.Network { return w.network }
func (w *Withdrawal) Address() Address         { return w.address }
func (w *Withdrawal) Comment() Comment         { return w.comment }
func (w *Withdrawal) Status() Status           { return w.status }
func (w *Withdrawal) CreatedAt() time.Time     { return w.createdAt }
func (w *Withdrawal) ResolvedAt() *time.Time   { return w.resolvedAt }

// Resolve moves a pending withdrawal to its terminal status exactly once.
func (w *Withdrawal) Resolve(decision Status, now time.Time) error {
	if !decision.IsTerminal() {
		return ErrInvalidDecision
	}
	if w.status != StatusPending {
		return ErrAlreadyResolved
	}
	w.status = decision
	w.resolvedAt = &now
	return nil
}

// RefundsOnResolve reports whether resolving to decision returns the funds.
func RefundsOnResolve(decision Status) bool {
	return decision == StatusRejected
}

func (w *Withdrawal) Clone() *Withdrawal {
	c := *w
	return &c
}
