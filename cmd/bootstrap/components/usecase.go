package components

import (
	"spotlight-ledger/internal/domain/schedule"
	"spotlight-ledger/internal/pkg/clock"
	"spotlight-ledger/internal/usecase"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(s *schedule.State) *schedule.State { return s },
		fx.As(new(commands.CoinActivity)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccountUseCase,
		commands.NewLedgerUseCase,
		commands.NewAllocationUseCase,
		commands.NewWithdrawalUseCase,
		commands.NewDepositUseCase,
		commands.NewSweepUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewAllocationQueries,
		queries.NewWithdrawalQueries,
		queries.NewDepositQueries,
		queries.NewScheduleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
