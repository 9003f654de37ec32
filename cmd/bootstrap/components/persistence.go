package components

import (
	"context"
	"log/slog"

	"spotlight-ledger/internal/infra/db"
	"spotlight-ledger/internal/infra/memstore"
	"spotlight-ledger/internal/infra/readstore"
	"spotlight-ledger/internal/infra/sqlstore"
	"spotlight-ledger/internal/infra/uow"
	"spotlight-ledger/internal/pkg/config"
	"spotlight-ledger/internal/usecase/queries"
	"spotlight-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is the write side and every read port, backed by one driver.
type Stores struct {
	fx.Out

	UnitOfWork  shared.UnitOfWork
	Accounts    queries.AccountReadStore
	Allocations queries.AllocationReadStore
	Withdrawals queries.WithdrawalReadStore
	Deposits    queries.DepositReadStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return newPostgresStores(lc, cfg)
	default:
		logger.Warn("インメモリストアで起動します。再起動するとデータは失われます")
		store := memstore.New()
		rs := memstore.NewReadStore(store)
		return Stores{
			UnitOfWork:  store,
			Accounts:    rs,
			Allocations: rs,
			Withdrawals: rs,
			Deposits:    rs,
		}, nil
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config) (Stores, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return Stores{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	q := sqlstore.New()
	rs := readstore.NewReadStore(q, pool)
	return Stores{
		UnitOfWork:  uow.NewPostgresUoW(pool, q),
		Accounts:    rs,
		Allocations: rs,
		Withdrawals: rs,
		Deposits:    rs,
	}, nil
}
