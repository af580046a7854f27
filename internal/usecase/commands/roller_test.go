//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollPinnedReservations(t *testing.T) {
	// the fixture clock reads 2026-03-03 01:00 Tokyo, so yesterday is 2026-03-02
	t.Run("rolls yesterday's pinned instances one week forward", func(t *testing.T) {
		f := newFixture(t)
		otherStadium := f.store.AddStadium(f.clubID, "South Pitch")

		source := f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 18, 30)).AsPinned().WithPlayerName("Hanako Sato"))
		f.store.Seed(builder.NewReservationBuilder().WithStadiumID(otherStadium).WithTime(f.at(2, 9, 0)).AsPinned().BuildDomain())
		f.store.Seed(builder.NewReservationBuilder().WithStadiumID(otherStadium).WithTime(f.at(9, 9, 20)).AsCanceled().BuildDomain())
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 12, 0)))
		f.seed(builder.NewReservationBuilder().WithTime(f.at(3, 12, 0)).AsPinned())

		result, err := f.cmds.RollPinnedReservations(context.Background(), time.Time{})
		require.NoError(t, err)

		assert.True(t, f.at(2, 0, 0).Equal(result.Day))
		if diff := cmp.Diff([]int{2, 1, 1, 0}, []int{result.Candidates, result.Created, result.Skipped, result.Failed}); diff != "" {
			t.Errorf("roll result mismatch (-want +got):\n%s", diff)
		}

		rolled := f.store.InHour(f.stadiumID, f.at(9, 18, 0))
		require.Len(t, rolled, 1)
		assert.Equal(t, reservation.StatusPinned, rolled[0].Status)
		assert.Equal(t, source.UserID(), rolled[0].UserID)
		assert.Equal(t, "Hanako Sato", rolled[0].PlayerName)
		assert.True(t, f.at(9, 18, 30).Equal(rolled[0].ReservationTime))
		assert.NotEqual(t, source.ID(), rolled[0].ID)

		assert.Len(t, f.store.InHour(otherStadium, f.at(9, 9, 0)), 1, "canceled occupant blocks the roll")
	})

	t.Run("running twice for the same day creates nothing new", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 18, 30)).AsPinned())

		first, err := f.cmds.RollPinnedReservations(context.Background(), time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 1, first.Created)

		second, err := f.cmds.RollPinnedReservations(context.Background(), time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 0, second.Created)
		assert.Equal(t, 1, second.Skipped)
		assert.Equal(t, 2, f.store.Count())
	})

	t.Run("day bounds follow the schedule zone", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 0, 0)).AsPinned())
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 23, 59)).AsPinned())
		f.seed(builder.NewReservationBuilder().WithTime(f.at(3, 0, 0)).AsPinned())
		f.seed(builder.NewReservationBuilder().WithTime(f.at(1, 23, 59)).AsPinned())

		// 2026-03-02 16:00 UTC is already 2026-03-03 in Tokyo
		result, err := f.cmds.RollPinnedReservations(context.Background(), time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 2, result.Candidates)
		assert.Equal(t, 2, result.Created)
		assert.Len(t, f.store.InHour(f.stadiumID, f.at(9, 0, 0)), 1)
		assert.Len(t, f.store.InHour(f.stadiumID, f.at(9, 23, 0)), 1)
	})

	t.Run("explicit today overrides the clock", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewReservationBuilder().WithTime(f.at(20, 7, 0)).AsPinned())

		result, err := f.cmds.RollPinnedReservations(context.Background(), f.at(21, 12, 0))
		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Len(t, f.store.InHour(f.stadiumID, f.at(27, 7, 0)), 1)
	})

	t.Run("a lost race on the unique index is skipped", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 18, 30)).AsPinned())
		f.store.SaveErr = func(*reservation.Reservation) error { return uniqueViolation() }

		result, err := f.cmds.RollPinnedReservations(context.Background(), time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("one failing instance does not stop the rest", func(t *testing.T) {
		f := newFixture(t)
		broken := f.store.AddStadium(f.clubID, "Flooded Pitch")
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 18, 30)).AsPinned())
		f.store.Seed(builder.NewReservationBuilder().WithStadiumID(broken).WithTime(f.at(2, 10, 0)).AsPinned().BuildDomain())
		f.store.SaveErr = func(res *reservation.Reservation) error {
			if res.StadiumID() == broken {
				return errors.New("disk full")
			}
			return nil
		}

		result, err := f.cmds.RollPinnedReservations(context.Background(), time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Candidates)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("listing failure", func(t *testing.T) {
		f := newFixture(t)
		f.store.ReadErr = func(op string) error {
			if op == "PinnedReservationsByDay" {
				return errors.New("timeout")
			}
			return nil
		}

		result, err := f.cmds.RollPinnedReservations(context.Background(), time.Time{})
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("canceled context stops before the first instance", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewReservationBuilder().WithTime(f.at(2, 18, 30)).AsPinned())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := f.cmds.RollPinnedReservations(ctx, time.Time{})
		assert.ErrorIs(t, err, context.Canceled)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Candidates)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, f.store.Count())
	})
}
