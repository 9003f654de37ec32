package request

import (
	"fmt"

	"spotlight-ledger/internal/domain/account"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Amounts travel as decimal strings and become account.Money on the way into a command.
var converters = []copier.TypeConverter{
	{
		SrcType: copier.String,
		DstType: account.Money{},
		Fn: func(src any) (any, error) {
			s, ok := src.(string)
			if !ok {
				return nil, fmt.Errorf("amount: expected string, got %T", src)
			}
			return account.ParseMoney(s)
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{Converters: converters})
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
