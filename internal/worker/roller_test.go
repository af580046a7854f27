//go:build unit

package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoller struct {
	calls []time.Time
	err   error
}

func (f *fakeRoller) RollPinnedReservations(_ context.Context, today time.Time) (*commands.RollResult, error) {
	f.calls = append(f.calls, today)
	if f.err != nil {
		return nil, f.err
	}
	return &commands.RollResult{Day: today.AddDate(0, 0, -1)}, nil
}

type fakeLocker struct {
	held       map[string]bool
	err        error
	releaseErr error
	released   []string
}

func (f *fakeLocker) Release(_ context.Context, key string) error {
	f.released = append(f.released, key)
	if f.releaseErr != nil {
		return f.releaseErr
	}
	delete(f.held, key)
	return nil
}

func (f *fakeLocker) TryAcquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.held[key] {
		return false, nil
	}
	f.held[key] = true
	return true, nil
}

func TestNextRun(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	offset := time.Hour

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before run time runs today",
			now:  time.Date(2026, 3, 2, 0, 30, 0, 0, loc),
			want: time.Date(2026, 3, 2, 1, 0, 0, 0, loc),
		},
		{
			name: "exactly at run time waits until tomorrow",
			now:  time.Date(2026, 3, 2, 1, 0, 0, 0, loc),
			want: time.Date(2026, 3, 3, 1, 0, 0, 0, loc),
		},
		{
			name: "after run time runs tomorrow",
			now:  time.Date(2026, 3, 2, 13, 0, 0, 0, loc),
			want: time.Date(2026, 3, 3, 1, 0, 0, 0, loc),
		},
		{
			name: "utc input is read in the schedule zone",
			now:  time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC), // 00:30 in Tokyo
			want: time.Date(2026, 3, 2, 1, 0, 0, 0, loc),
		},
		{
			name: "month rollover",
			now:  time.Date(2026, 3, 31, 23, 0, 0, 0, loc),
			want: time.Date(2026, 4, 1, 1, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextRun(tt.now, loc, offset)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestRollerWorker_RunOnce(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Date(2026, 3, 2, 1, 0, 0, 0, loc)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("second replica skips the day", func(t *testing.T) {
		roller := &fakeRoller{}
		locker := &fakeLocker{held: map[string]bool{}}
		w := NewRollerWorker(roller, locker, clock.NewMockClock(now), loc, time.Hour, time.Hour, logger)

		result, ran, err := w.RunOnce(context.Background(), now)
		require.NoError(t, err)
		assert.True(t, ran)
		require.NotNil(t, result)

		result, ran, err = w.RunOnce(context.Background(), now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, ran)
		assert.Nil(t, result)

		assert.Len(t, roller.calls, 1)
		assert.True(t, locker.held["roller:lock:2026-03-02"])
	})

	t.Run("lock error stops the run", func(t *testing.T) {
		roller := &fakeRoller{}
		locker := &fakeLocker{err: assert.AnError}
		w := NewRollerWorker(roller, locker, clock.NewMockClock(now), loc, time.Hour, time.Hour, logger)

		_, ran, err := w.RunOnce(context.Background(), now)
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, ran)
		assert.Empty(t, roller.calls)
	})

	t.Run("roller error is returned", func(t *testing.T) {
		roller := &fakeRoller{err: assert.AnError}
		locker := &fakeLocker{held: map[string]bool{}}
		w := NewRollerWorker(roller, locker, clock.NewMockClock(now), loc, time.Hour, time.Hour, logger)

		_, ran, err := w.RunOnce(context.Background(), now)
		assert.ErrorIs(t, err, assert.AnError)
		assert.True(t, ran)
	})

	t.Run("failed run frees the day for a retry", func(t *testing.T) {
		roller := &fakeRoller{err: assert.AnError}
		locker := &fakeLocker{held: map[string]bool{}}
		w := NewRollerWorker(roller, locker, clock.NewMockClock(now), loc, time.Hour, time.Hour, logger)

		_, _, err := w.RunOnce(context.Background(), now)
		require.Error(t, err)
		assert.Equal(t, []string{"roller:lock:2026-03-02"}, locker.released)
		assert.False(t, locker.held["roller:lock:2026-03-02"])

		roller.err = nil
		result, ran, err := w.RunOnce(context.Background(), now.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, ran)
		assert.NotNil(t, result)
		assert.Len(t, roller.calls, 2)
	})

	t.Run("release failure still returns the roll error", func(t *testing.T) {
		roller := &fakeRoller{err: assert.AnError}
		locker := &fakeLocker{held: map[string]bool{}, releaseErr: context.DeadlineExceeded}
		w := NewRollerWorker(roller, locker, clock.NewMockClock(now), loc, time.Hour, time.Hour, logger)

		_, ran, err := w.RunOnce(context.Background(), now)
		assert.ErrorIs(t, err, assert.AnError)
		assert.True(t, ran)
		assert.True(t, locker.held["roller:lock:2026-03-02"])
	})

	t.Run("success keeps the lock", func(t *testing.T) {
		locker := &fakeLocker{held: map[string]bool{}}
		w := NewRollerWorker(&fakeRoller{}, locker, clock.NewMockClock(now), loc, time.Hour, time.Hour, logger)

		_, _, err := w.RunOnce(context.Background(), now)
		require.NoError(t, err)
		assert.Empty(t, locker.released)
	})
}

func TestLockKey(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "roller:lock:2026-03-02", LockKey(time.Date(2026, 3, 2, 1, 0, 0, 0, loc)))
}
