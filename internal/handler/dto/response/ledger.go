package response

import (
	"time"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountResponse struct {
	ID        uuid.UUID     `json:"id"`
	Email     string        `json:"email"`
	Role      string        `json:"role"`
	Balance   account.Money `json:"balance"`
	CreatedAt time.Time     `json:"created_at"`
}

func FromAccount(a *account.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID(),
		Email:     a.Email().Value(),
		Role:      a.Role().String(),
		Balance:   a.Balance(),
		CreatedAt: a.CreatedAt(),
	}
}

type BalanceResponse struct {
	AccountID uuid.UUID     `json:"account_id"`
	Balance   account.Money `json:"balance"`
}

type AllocationResponse struct {
	ID        uuid.UUID        `json:"id"`
	AccountID uuid.UUID        `json:"account_id"`
	CoinID    int              `json:"coin_id"`
	Amount    account.Money    `json:"amount"`
	Percent   *decimal.Decimal `json:"percent,omitempty"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
	ClosedAt  *time.Time       `json:"closed_at,omitempty"`
	// Balance is the account balance right after the operation.
	Balance *account.Money `json:"balance,omitempty"`
}

func FromAllocation(a *allocation.Allocation) *AllocationResponse {
	return &AllocationResponse{
		ID:        a.ID(),
		AccountID: a.AccountID(),
		CoinID:    a.CoinID(),
		Amount:    a.Amount(),
		Percent:   a.Percent(),
		Status:    a.Status().String(),
		CreatedAt: a.CreatedAt(),
		ExpiresAt: a.ExpiresAt(),
		ClosedAt:  a.ClosedAt(),
	}
}

func FromAllocationResult(r *commands.AllocationResult) *AllocationResponse {
	res := FromAllocation(r.Allocation)
	balance := r.Balance
	res.Balance = &balance
	return res
}

type WithdrawalResponse struct {
	ID         uuid.UUID      `json:"id"`
	AccountID  uuid.UUID      `json:"account_id"`
	Amount     account.Money  `json:"amount"`
	Network    string         `json:"network"`
	Address    string         `json:"address"`
	Comment    string         `json:"comment"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
	Balance    *account.Money `json:"balance,omitempty"`
}

func FromWithdrawal(w *withdrawal.Withdrawal) *WithdrawalResponse {
	return &WithdrawalResponse{
		ID:         w.ID(),
		AccountID:  w.AccountID(),
		Amount:     w.Amount(),
		Network:    w.Network().String(),
		Address:    w.Address().Value(),
		Comment:    w.Comment().Value(),
		Status:     w.Status().String(),
		CreatedAt:  w.CreatedAt(),
		ResolvedAt: w.ResolvedAt(),
	}
}

func FromWithdrawalResult(r *commands.WithdrawalResult) *WithdrawalResponse {
	res := FromWithdrawal(r.Withdrawal)
	balance := r.Balance
	res.Balance = &balance
	return res
}

type DepositResponse struct {
	ID          uuid.UUID      `json:"id"`
	AccountID   uuid.UUID      `json:"account_id"`
	Amount      account.Money  `json:"amount"`
	Network     string         `json:"network"`
	TxReference string         `json:"tx_reference"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`
	Balance     *account.Money `json:"balance,omitempty"`
}

func FromDeposit(d *deposit.Deposit) *DepositResponse {
	return &DepositResponse{
		ID:          d.ID(),
		AccountID:   d.AccountID(),
		Amount:      d.Amount(),
		Network:     d.Network().String(),
		TxReference: d.TxReference(),
		Status:      d.Status().String(),
		CreatedAt:   d.CreatedAt(),
		ResolvedAt:  d.ResolvedAt(),
	}
}

func FromDepositResult(r *commands.DepositResult) *DepositResponse {
	res := FromDeposit(r.Deposit)
	balance := r.Balance
	res.Balance = &balance
	return res
}
