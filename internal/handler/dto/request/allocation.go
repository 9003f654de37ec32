package request

import (
	"spotlight-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAllocationRequest struct {
	CoinID int    `json:"coin_id" binding:"required,min=1"`
	Amount string `json:"amount" binding:"required"`
}

func (r CreateAllocationRequest) ToInput(accountID uuid.UUID, idempotencyKey string) (commands.AllocateInput, error) {
	var in commands.AllocateInput
	if err := copyInto(&in, &r); err != nil {
		return commands.AllocateInput{}, err
	}
	in.AccountID = accountID
	in.IdempotencyKey = idempotencyKey
	return in, nil
}

type CloseAllocationRequest struct {
	Percent *string `json:"percent"`
}

func (r CloseAllocationRequest) ToPercent() (*decimal.Decimal, error) {
	return parseDecimal(r.Percent)
}
