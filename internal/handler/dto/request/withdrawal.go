package request

import (
	"spotlight-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateWithdrawalRequest struct {
	Amount  string `json:"amount" binding:"required"`
	Network string `json:"network" binding:"required"`
	Address string `json:"address" binding:"required,max=128"`
	Comment string `json:"comment" binding:"max=500"`
}

func (r CreateWithdrawalRequest) ToInput(accountID uuid.UUID, idempotencyKey string) (commands.RequestWithdrawalInput, error) {
	var in commands.RequestWithdrawalInput
	if err := copyInto(&in, &r); err != nil {
		return commands.RequestWithdrawalInput{}, err
	}
	in.AccountID = accountID
	in.IdempotencyKey = idempotencyKey
	return in, nil
}

// ResolveRequest carries an admin decision for a withdrawal or a deposit.
type ResolveRequest struct {
	Status string `json:"status" binding:"required"`
}
