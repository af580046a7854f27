package worker

import (
	"context"
	"log/slog"
	"time"

	"stadium-scheduler/internal/infra/lock"
	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/usecase/commands"
)

const lockKeyPrefix = "roller:lock:"

type Roller interface {
	RollPinnedReservations(ctx context.Context, today time.Time) (*commands.RollResult, error)
}

// RollerWorker runs the weekly roller once a day at a fixed local time.
type RollerWorker struct {
	roller  Roller
	locker  lock.Locker
	clock   clock.Clock
	loc     *time.Location
	runAt   time.Duration
	lockTTL time.Duration
	logger  *slog.Logger
}

func NewRollerWorker(
	roller Roller,
	locker lock.Locker,
	clk clock.Clock,
	loc *time.Location,
	runAt, lockTTL time.Duration,
	logger *slog.Logger,
) *RollerWorker {
	return &RollerWorker{
		roller:  roller,
		locker:  locker,
		clock:   clk,
		loc:     loc,
		runAt:   runAt,
		lockTTL: lockTTL,
		logger:  logger,
	}
}

func (w *RollerWorker) Start(ctx context.Context) {
	w.logger.Info("roller worker started", "run_at", w.runAt.String(), "timezone", w.loc.String())

	for {
		next := NextRun(w.clock.Now(), w.loc, w.runAt)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("roller worker stopped")
			return
		case <-timer.C:
			if _, _, err := w.RunOnce(ctx, w.clock.Now()); err != nil {
				w.logger.Error("roller run failed", "error", err.Error())
			}
		}
	}
}

// RunOnce rolls for the day of now unless another replica already holds that day's lock.
func (w *RollerWorker) RunOnce(ctx context.Context, now time.Time) (*commands.RollResult, bool, error) {
	key := LockKey(now.In(w.loc))
	ok, err := w.locker.TryAcquire(ctx, key, w.lockTTL)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		w.logger.Info("roller already ran elsewhere", "lock", key)
		return nil, false, nil
	}

	result, err := w.roller.RollPinnedReservations(ctx, now)
	if err != nil {
		// free the day so a retry or another replica can take it
		if rerr := w.locker.Release(context.WithoutCancel(ctx), key); rerr != nil {
			w.logger.Error("failed to release roller lock; run `roll --date` once it expires",
				"lock", key,
				"date", now.In(w.loc).Format(time.DateOnly),
				"error", rerr.Error())
		}
		return nil, true, err
	}
	return result, true, nil
}

func LockKey(day time.Time) string {
	return lockKeyPrefix + day.Format(time.DateOnly)
}

// NextRun returns the first instant after now at local midnight + offset.
func NextRun(now time.Time, loc *time.Location, offset time.Duration) time.Time {
	local := now.In(loc)
	h := int(offset / time.Hour)
	m := int((offset % time.Hour) / time.Minute)
	candidate := time.Date(local.Year(), local.Month(), local.Day(), h, m, 0, 0, loc)
	if !candidate.After(local) {
		candidate = time.Date(local.Year(), local.Month(), local.Day()+1, h, m, 0, 0, loc)
	}
	return candidate
}
