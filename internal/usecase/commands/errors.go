package commands

import (
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/errs"
)

var (
	ErrInvalidInput              = errs.New("invalid input")
	ErrAccountNotFound           = errs.New("account not found")
	ErrDuplicateAccount          = errs.New("account already exists")
	ErrInsufficientFunds         = errs.New("insufficient funds")
	ErrUnknownCoin               = errs.New("unknown coin")
	ErrCoinNotActive             = errs.New("coin not active")
	ErrAllocationNotFound        = errs.New("allocation not found")
	ErrAllocationNotActive       = errs.New("allocation no longer active")
	ErrWithdrawalNotFound        = errs.New("withdrawal not found")
	ErrWithdrawalAlreadyResolved = errs.New("withdrawal has already been resolved")
	ErrDepositNotFound           = errs.New("deposit not found")
	ErrDepositAlreadyResolved    = errs.New("deposit has already been resolved")
	ErrIdempotencyInProgress     = errs.New("idempotency in progress")
	ErrIdempotencyMismatch       = errs.New("idempotency key reused with a different request")
	ErrStorageUnavailable        = errs.New("storage unavailable")
)

// storageErr marks err as a store failure unless it already carries a use case error.
func storageErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrInvalidInput, ErrAccountNotFound, ErrDuplicateAccount, ErrInsufficientFunds,
		ErrUnknownCoin, ErrCoinNotActive, ErrAllocationNotFound, ErrAllocationNotActive,
		ErrWithdrawalNotFound, ErrWithdrawalAlreadyResolved, ErrDepositNotFound,
		ErrDepositAlreadyResolved, ErrIdempotencyInProgress, ErrIdempotencyMismatch,
		ErrStorageUnavailable,
	} {
		if errs.Is(err, known) {
			return err
		}
	}
	return errs.Mark(errs.Wrap(err, msg), ErrStorageUnavailable)
}

// notFoundAs maps a repository NOT_FOUND onto the use case sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
