package components

import (
	"spotlight-ledger/internal/handler"
	"spotlight-ledger/internal/handler/api"
	"spotlight-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNetworkHandler,
		api.NewScheduleHandler,
		api.NewAccountHandler,
		api.NewAllocationHandler,
		api.NewWithdrawalHandler,
		api.NewDepositHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Network    *api.NetworkHandler
	Schedule   *api.ScheduleHandler
	Account    *api.AccountHandler
	Allocation *api.AllocationHandler
	Withdrawal *api.WithdrawalHandler
	Deposit    *api.DepositHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Network:    p.Network,
		Schedule:   p.Schedule,
		Account:    p.Account,
		Allocation: p.Allocation,
		Withdrawal: p.Withdrawal,
		Deposit:    p.Deposit,
	}
}
