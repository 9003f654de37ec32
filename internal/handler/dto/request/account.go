package request

import (
	"spotlight-ledger/internal/domain/account"
)

type OpenAccountRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"omitempty,oneof=user admin"`
}

type AdjustBalanceRequest struct {
	Amount string `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,max=100"`
}

func (r AdjustBalanceRequest) ToMoney() (account.Money, error) {
	return account.ParseMoney(r.Amount)
}

func (r AdjustBalanceRequest) Reference() string {
	return account.AdminRef(r.Reason)
}
