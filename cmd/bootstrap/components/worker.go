package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"stadium-scheduler/internal/infra/lock"
	"stadium-scheduler/internal/infra/mail"
	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/internal/usecase/commands"
	"stadium-scheduler/internal/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewRollerWorker,
	),
	fx.Invoke(
		startMailDispatcher,
		startRollerWorker,
	),
)

func NewRollerWorker(
	cfg config.Config,
	cmds commands.ReservationCommands,
	rdb *redis.Client,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) (*worker.RollerWorker, error) {
	runAt, err := cfg.Schedule.RunAtOffset()
	if err != nil {
		return nil, err
	}
	locker := lock.NewRedisLock(rdb, lockOwner())
	return worker.NewRollerWorker(cmds, locker, clk, loc, runAt, cfg.Schedule.RollerLockTTL, logger), nil
}

func lockOwner() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s:%d", host, os.Getpid())
}

func startMailDispatcher(lc fx.Lifecycle, d *mail.Dispatcher) {
	runInBackground(lc, d.Run)
}

func startRollerWorker(lc fx.Lifecycle, cfg config.Config, w *worker.RollerWorker, logger *slog.Logger) {
	if !cfg.Schedule.RollerEnabled {
		logger.Info("roller worker disabled")
		return
	}
	runInBackground(lc, w.Start)
}

// runInBackground starts run on app start and waits for it to return on stop.
func runInBackground(lc fx.Lifecycle, run func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
