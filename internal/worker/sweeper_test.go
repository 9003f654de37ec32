//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	commandsmock "spotlight-ledger/internal/testutil/mock/commands"
	"spotlight-ledger/internal/usecase/commands"
	"spotlight-ledger/internal/worker"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweeperRunOnce(t *testing.T) {
	t.Run("正常系: 設定したバッチ件数で掃除を呼ぶ", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweeps := commandsmock.NewMockSweepCommands(ctrl)
		sweeps.EXPECT().Sweep(gomock.Any(), 25).
			Return(commands.SweepResult{ClosedAllocations: 2, PurgedKeys: 1}, nil).Times(1)

		worker.NewSweeper(sweeps, time.Minute, 25, quietLogger()).RunOnce(context.Background())
	})

	t.Run("正常系: ゼロ値のバッチは既定値になる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweeps := commandsmock.NewMockSweepCommands(ctrl)
		sweeps.EXPECT().Sweep(gomock.Any(), 500).Return(commands.SweepResult{}, nil).Times(1)

		worker.NewSweeper(sweeps, 0, 0, quietLogger()).RunOnce(context.Background())
	})

	t.Run("異常系: 失敗してもパニックしない", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweeps := commandsmock.NewMockSweepCommands(ctrl)
		sweeps.EXPECT().Sweep(gomock.Any(), gomock.Any()).
			Return(commands.SweepResult{}, errors.New("db down")).Times(1)

		assert.NotPanics(t, func() {
			worker.NewSweeper(sweeps, time.Minute, 10, quietLogger()).RunOnce(context.Background())
		})
	})
}

func TestSweeperRun(t *testing.T) {
	t.Run("正常系: キャンセルされるまで周期的に掃除する", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweeps := commandsmock.NewMockSweepCommands(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		sweeps.EXPECT().Sweep(gomock.Any(), 10).
			DoAndReturn(func(context.Context, int) (commands.SweepResult, error) {
				calls++
				if calls == 3 {
					cancel()
				}
				return commands.SweepResult{}, nil
			}).Times(3)

		done := make(chan struct{})
		go func() {
			worker.NewSweeper(sweeps, time.Millisecond, 10, quietLogger()).Run(ctx)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("sweeper did not stop after cancellation")
		}
		assert.Equal(t, 3, calls)
	})
}
