package request

import (
	"spotlight-ledger/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateDepositRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Network     string `json:"network" binding:"required"`
	TxReference string `json:"tx_reference" binding:"required,max=200"`
}

func (r CreateDepositRequest) ToInput(accountID uuid.UUID) (commands.SubmitDepositInput, error) {
	var in commands.SubmitDepositInput
	if err := copyInto(&in, &r); err != nil {
		return commands.SubmitDepositInput{}, err
	}
	in.AccountID = accountID
	return in, nil
}
