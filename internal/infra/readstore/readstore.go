package readstore

import (
	"context"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/pkg/pgconv"
	"spotlight-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ViewQueries interface {
	GetAccount(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Accounts, error)
	ListLedgerEntries(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListParams) ([]sqlstore.LedgerEntries, error)
	ListAllocations(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListParams) ([]sqlstore.Allocations, error)
	ListWithdrawals(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListParams) ([]sqlstore.Withdrawals, error)
	ListDeposits(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListParams) ([]sqlstore.Deposits, error)
}

// ReadStore serves the query side straight from the pool, outside any transaction.
type ReadStore struct {
	queries ViewQueries
	db      sqlstore.DBTX
}

func NewReadStore(queries ViewQueries, db sqlstore.DBTX) *ReadStore {
	return &ReadStore{
		queries: queries,
		db:      db,
	}
}

var (
	_ queries.AccountReadStore    = (*ReadStore)(nil)
	_ queries.AllocationReadStore = (*ReadStore)(nil)
	_ queries.WithdrawalReadStore = (*ReadStore)(nil)
	_ queries.DepositReadStore    = (*ReadStore)(nil)
)

func (r *ReadStore) FindAccount(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	row, err := r.queries.GetAccount(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "account not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get account view", err)
	}
	balance, err := money(row.Balance)
	if err != nil {
		return nil, err
	}
	return &queries.AccountView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		Balance:   balance,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}, nil
}

func (r *ReadStore) ListEntries(ctx context.Context, accountID uuid.UUID, filter queries.ListFilter) ([]queries.EntryView, error) {
	filter.AccountID = &accountID
	rows, err := r.queries.ListLedgerEntries(ctx, r.db, listParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list ledger entries", err)
	}
	out := make([]queries.EntryView, 0, len(rows))
	for _, row := range rows {
		amount, err := money(row.Amount)
		if err != nil {
			return nil, err
		}
		after, err := money(row.BalanceAfter)
		if err != nil {
			return nil, err
		}
		out = append(out, queries.EntryView{
			ID:           row.ID,
			AccountID:    row.AccountID,
			Kind:         row.Kind,
			Amount:       amount,
			BalanceAfter: after,
			Reference:    row.Reference,
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *ReadStore) ListAllocations(ctx context.Context, filter queries.ListFilter) ([]queries.AllocationView, error) {
	rows, err := r.queries.ListAllocations(ctx, r.db, listParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list allocations", err)
	}
	out := make([]queries.AllocationView, 0, len(rows))
	for _, row := range rows {
		amount, err := money(row.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, queries.AllocationView{
			ID:        row.ID,
			AccountID: row.AccountID,
			CoinID:    int(row.CoinID),
			Amount:    amount,
			Percent:   pgconv.DecimalPtrFromNullable(row.Percent),
			Status:    row.Status,
			CreatedAt: row.CreatedAt.UTC(),
			ExpiresAt: row.ExpiresAt.UTC(),
			ClosedAt:  pgconv.TimePtrFromPgtype(row.ClosedAt),
		})
	}
	return out, nil
}

func (r *ReadStore) ListWithdrawals(ctx context.Context, filter queries.ListFilter) ([]queries.WithdrawalView, error) {
	rows, err := r.queries.ListWithdrawals(ctx, r.db, listParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list withdrawals", err)
	}
	out := make([]queries.WithdrawalView, 0, len(rows))
	for _, row := range rows {
		amount, err := money(row.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, queries.WithdrawalView{
			ID:         row.ID,
			AccountID:  row.AccountID,
			Amount:     amount,
			Network:    row.Network,
			Address:    row.Address,
			Comment:    row.Comment,
			Status:     row.Status,
			CreatedAt:  row.CreatedAt.UTC(),
			ResolvedAt: pgconv.TimePtrFromPgtype(row.ResolvedAt),
		})
	}
	return out, nil
}

func (r *ReadStore) ListDeposits(ctx context.Context, filter queries.ListFilter) ([]queries.DepositView, error) {
	rows, err := r.queries.ListDeposits(ctx, r.db, listParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list deposits", err)
	}
	out := make([]queries.DepositView, 0, len(rows))
	for _, row := range rows {
		amount, err := money(row.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, queries.DepositView{
			ID:          row.ID,
			AccountID:   row.AccountID,
			Amount:      amount,
			Network:     row.Network,
			TxReference: row.TxReference,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt.UTC(),
			ResolvedAt:  pgconv.TimePtrFromPgtype(row.ResolvedAt),
		})
	}
	return out, nil
}

// listParams asks for one row past the page so the caller can tell whether another page exists.
func listParams(f queries.ListFilter) sqlstore.ListParams {
	p := sqlstore.ListParams{
		AccountID:  pgconv.UUIDPtrToPgtype(f.AccountID),
		BeforeTime: pgconv.TimePtrToPgtype(f.BeforeTime),
		Limit:      int32(f.Limit + 1), // #nosec G115 -- limit is clamped by the query layer
	}
	if f.Status != "" {
		p.Status = pgtype.Text{String: f.Status, Valid: true}
	}
	if f.BeforeTime != nil {
		p.BeforeID = pgtype.UUID{Bytes: f.BeforeID, Valid: true}
	}
	return p
}

func money(d decimal.Decimal) (account.Money, error) {
	m, err := account.NewMoney(d)
	if err != nil {
		return account.Money{}, infra.WrapRepoErr(infra.KindDBFailure, "corrupt amount", err)
	}
	return m, nil
}
