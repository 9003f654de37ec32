package account

import (
	"time"

	"github.com/google/uuid"
)

// Account owns a balance that only changes through Debit and Credit.
type Account struct {
	id        uuid.UUID
	email     Email
	role      Role
	balance   Money
	createdAt time.Time
	updatedAt time.Time
}

func NewAccount(email Email, role Role, now time.Time) *Account {
	return &Account{
		id:        uuid.New(),
		email:     email,
		role:      role,
		balance:   Zero,
		createdAt: now,
		updatedAt: now,
	}
}

func Reconstruct(id uuid.UUID, email Email, role Role, balance Money, createdAt, updatedAt time.Time) *Account {
	return &Account{
		id:        id,
		email:     email,
		role:      role,
		balance:   balance,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Email() Email         { return a.email }
func (a *Account) Role() Role           { return a.role }
func (a *Account) Balance() Money       { return a.balance }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// Debit subtracts amount, leaving the account untouched when the balance does not cover it.
func (a *Account) Debit(amount Money, now time.Time) error {
	next, err := a.balance.Sub(amount)
	if err != nil {
		return err
	}
	a.balance = next
	a.updatedAt = now
	return nil
}

// Credit adds amount, leaving the account untouched when the result would be out of range.
func (a *Account) Credit(amount Money, now time.Time) error {
	next, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = next
	a.updatedAt = now
	return nil
}

// Clone returns an independent copy for snapshot reads.
func (a *Account) Clone() *Account {
	c := *a
	return &c
}
