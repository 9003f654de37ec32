package repository

import (
	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/domain/allocation"
	"spotlight-ledger/internal/domain/deposit"
	"spotlight-ledger/internal/domain/network"
	"spotlight-ledger/internal/domain/withdrawal"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func corrupt(what string, err error) error {
	return infra.WrapRepoErr(infra.KindDBFailure, "corrupt "+what+" row", err)
}

func toMoney(what string, d decimal.Decimal) (account.Money, error) {
	m, err := account.NewMoney(d)
	if err != nil {
		return account.Money{}, corrupt(what, err)
	}
	return m, nil
}

func toAllocation(row sqlstore.Allocations) (*allocation.Allocation, error) {
	amount, err := toMoney("allocation", row.Amount)
	if err != nil {
		return nil, err
	}
	status, err := allocation.ParseStatus(row.Status)
	if err != nil {
		return nil, corrupt("allocation", err)
	}
	return allocation.Reconstruct(
		row.ID, row.AccountID,
		int(row.CoinID),
		amount,
		pgconv.DecimalPtrFromNullable(row.Percent),
		status,
		row.CreatedAt.UTC(), row.ExpiresAt.UTC(),
		pgconv.TimePtrFromPgtype(row.ClosedAt),
	), nil
}

func fromAllocation(a *allocation.Allocation) sqlstore.Allocations {
	return sqlstore.Allocations{
		ID:        a.ID(),
		AccountID: a.AccountID(),
		CoinID:    int32(a.CoinID()), // #nosec G115 -- coin ids are bounded by the schedule size
		Amount:    a.Amount().Decimal(),
		Percent:   pgconv.DecimalPtrToNullable(a.Percent()),
		Status:    a.Status().String(),
		CreatedAt: a.CreatedAt(),
		ExpiresAt: a.ExpiresAt(),
		ClosedAt:  pgconv.TimePtrToPgtype(a.ClosedAt()),
	}
}

func toWithdrawal(row sqlstore.Withdrawals) (*withdrawal.Withdrawal, error) {
	amount, err := toMoney("withdrawal", row.Amount)
	if err != nil {
		return nil, err
	}
	nw, err := network.Parse(row.Network)
	if err != nil {
		return nil, corrupt("withdrawal", err)
	}
	address, err := withdrawal.NewAddress(row.Address)
	if err != nil {
		return nil, corrupt("withdrawal", err)
	}
	comment, err := withdrawal.NewComment(row.Comment)
	if err != nil {
		return nil, corrupt("withdrawal", err)
	}
	status, err := withdrawal.ParseStatus(row.Status)
	if err != nil {
		return nil, corrupt("withdrawal", err)
	}
	return withdrawal.Reconstruct(
		row.ID, row.AccountID,
		amount, nw, address, comment, status,
		row.CreatedAt.UTC(),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	), nil
}

func fromWithdrawal(w *withdrawal.Withdrawal) sqlstore.Withdrawals {
	return sqlstore.Withdrawals{
		ID:         w.ID(),
		AccountID:  w.AccountID(),
		Amount:     w.Amount().Decimal(),
		Network:    w.Network().String(),
		Address:    w.Address().Value(),
		Comment:    w.Comment().Value(),
		Status:     w.Status().String(),
		CreatedAt:  w.CreatedAt(),
		ResolvedAt: pgconv.TimePtrToPgtype(w.ResolvedAt()),
	}
}

func toDeposit(row sqlstore.Deposits) (*deposit.Deposit, error) {
	amount, err := toMoney("deposit", row.Amount)
	if err != nil {
		return nil, err
	}
	nw, err := network.Parse(row.Network)
	if err != nil {
		return nil, corrupt("deposit", err)
	}
	status, err := deposit.ParseStatus(row.Status)
	if err != nil {
		return nil, corrupt("deposit", err)
	}
	return deposit.Reconstruct(
		row.ID, row.AccountID,
		amount, nw, row.TxReference, status,
		row.CreatedAt.UTC(),
		pgconv.TimePtrFromPgtype(row.ResolvedAt),
	), nil
}

func fromDeposit(d *deposit.Deposit) sqlstore.Deposits {
	return sqlstore.Deposits{
		ID:          d.ID(),
		AccountID:   d.AccountID(),
		Amount:      d.Amount().Decimal(),
		Network:     d.Network().String(),
		TxReference: d.TxReference(),
		Status:      d.Status().String(),
		CreatedAt:   d.CreatedAt(),
		ResolvedAt:  pgconv.TimePtrToPgtype(d.ResolvedAt()),
	}
}
