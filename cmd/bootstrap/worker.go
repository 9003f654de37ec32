package bootstrap

import (
	"context"
	"log/slog"

	"spotlight-ledger/internal/pkg/config"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, cfg config.Config, sweeps commands.SweepCommands, logger *slog.Logger) {
	sweeper := worker.NewSweeper(sweeps, cfg.Worker.SweepInterval, cfg.Worker.SweepBatch, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("スイーパーを起動します", "interval", cfg.Worker.SweepInterval, "batch", cfg.Worker.SweepBatch)
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("スイーパーを停止しました")
			return nil
		},
	})
}
