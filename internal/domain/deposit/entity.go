package deposit

import (
	"strings"
	"time"
	"unicode/utf8"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/network"

	"github.com/google/uuid"
)

const maxReferenceLen = 200

// Deposit records funds a user reports as sent. The balance changes only when an admin confirms it.
type Deposit struct {
	id          uuid.UUID
	accountID   uuid.UUID
	amount      account.Money
	network     network.Network
	txReference string
	status      Status
	createdAt   time.Time
	resolvedAt  *time.Time
}

func New(accountID uuid.UUID, amount account.Money, nw network.Network, txReference string, now time.Time) (*Deposit, error) {
	if amount.IsZero() {
		return nil, account.ErrNonPositive
	}
	if !nw.IsValid() {
		return nil, network.ErrUnknownNetwork
	}
	txReference = strings.TrimSpace(txReference)
	if utf8.RuneCountInString(txReference) > maxReferenceLen {
		return nil, ErrReferenceTooLong
	}
	return &Deposit{
		id:          uuid.New(),
		accountID:   accountID,
		amount:      amount,
		network:     nw,
		txReference: txReference,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id, accountID uuid.UUID,
	amount account.Money,
	nw network.Network,
	txReference string,
	status Status,
	createdAt time.Time,
	resolvedAt *time.Time,
) *Deposit {
	return &Deposit{
		id:          id,
		accountID:   accountID,
		amount:      amount,
		network:     nw,
		txReference: txReference,
		status:      status,
		createdAt:   createdAt,
		resolvedAt:  resolvedAt,
	}
}

func (d *Deposit) ID() uuid.UUID            { return d.id }
func (d *Deposit) AccountID() uuid.UUID     { return d.accountID }
func (d *Deposit) Amount() account.Money    { return d.amount }
func (d *Deposit) Network() network.Network { return d.network }
func (d *Deposit) TxReference() string      { return d.txReference }
func (d *Deposit) Status() Status           { return d.status }
func (d *Deposit) CreatedAt() time.Time     { return d.createdAt }
func (d *Deposit) ResolvedAt() *time.Time   { return d.resolvedAt }

func (d *Deposit) Resolve(decision Status, now time.Time) error {
	if !decision.IsTerminal() {
		return ErrInvalidDecision
	}
	if d.status != StatusPending {
		return ErrAlreadyResolved
	}
	d.status = decision
	d.resolvedAt = &now
	return nil
}

// CreditsOnResolve reports whether resolving to decision adds the amount to the balance.
func CreditsOnResolve(decision Status) bool {
	return decision == StatusConfirmed
}

func (d *Deposit) Clone() *Deposit {
	c := *d
	return &c
}
