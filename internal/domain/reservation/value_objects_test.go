//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	t.Run("時間単位に切り捨て", func(t *testing.T) {
		slot := reservation.NewSlot(time.Date(2026, 3, 10, 18, 59, 59, 0, builder.Tokyo()))

		assert.True(t, time.Date(2026, 3, 10, 18, 0, 0, 0, builder.Tokyo()).Equal(slot.Start()))
		assert.True(t, time.Date(2026, 3, 10, 19, 0, 0, 0, builder.Tokyo()).Equal(slot.End()))
	})

	t.Run("30分オフセットのゾーンでも壁時計の時間", func(t *testing.T) {
		kolkata, err := time.LoadLocation("Asia/Kolkata")
		require.NoError(t, err)

		slot := reservation.NewSlot(time.Date(2026, 3, 10, 18, 40, 0, 0, kolkata))
		assert.Equal(t, 18, slot.Start().Hour())
		assert.Equal(t, 0, slot.Start().Minute())
	})

	t.Run("AddWeeksは暦日で加算", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// DST starts on 2026-03-08 in New York
		slot := reservation.NewSlot(time.Date(2026, 3, 5, 18, 30, 0, 0, ny)).AddWeeks(1)
		assert.Equal(t, 12, slot.Time().Day())
		assert.Equal(t, 18, slot.Time().Hour())
	})
}

func TestSlotPolicy_Allows(t *testing.T) {
	tests := []struct {
		name      string
		policy    reservation.SlotPolicy
		occupancy reservation.Occupancy
		want      bool
	}{
		{"通常: 空きOK", reservation.PolicyCanceledFreesSlot, reservation.Vacant(), true},
		{"通常: CANCELEDはOK", reservation.PolicyCanceledFreesSlot, reservation.OccupiedBy(reservation.StatusCanceled), true},
		{"通常: RESERVEDはNG", reservation.PolicyCanceledFreesSlot, reservation.OccupiedBy(reservation.StatusReserved), false},
		{"通常: PINNEDはNG", reservation.PolicyCanceledFreesSlot, reservation.OccupiedBy(reservation.StatusPinned), false},
		{"固定: 空きOK", reservation.PolicyAnyOccupantBlocks, reservation.Vacant(), true},
		{"固定: CANCELEDもNG", reservation.PolicyAnyOccupantBlocks, reservation.OccupiedBy(reservation.StatusCanceled), false},
		{"固定: RESERVEDはNG", reservation.PolicyAnyOccupantBlocks, reservation.OccupiedBy(reservation.StatusReserved), false},
		{"固定: PINNEDはNG", reservation.PolicyAnyOccupantBlocks, reservation.OccupiedBy(reservation.StatusPinned), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Allows(tt.occupancy))
		})
	}
}

func TestDayBounds(t *testing.T) {
	// 2026-03-02 16:00 UTC is 2026-03-03 01:00 in Tokyo
	from, to := reservation.DayBounds(time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC), builder.Tokyo())

	assert.True(t, time.Date(2026, 3, 3, 0, 0, 0, 0, builder.Tokyo()).Equal(from))
	assert.True(t, time.Date(2026, 3, 4, 0, 0, 0, 0, builder.Tokyo()).Equal(to))
}

func TestRollForwardTime(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, builder.Tokyo())
	instance := time.Date(2026, 3, 2, 9, 45, 0, 0, time.UTC) // 18:45 in Tokyo

	got := reservation.RollForwardTime(instance, day)
	assert.True(t, time.Date(2026, 3, 9, 18, 45, 0, 0, builder.Tokyo()).Equal(got))
	assert.Equal(t, builder.Tokyo().String(), got.Location().String())
}

func TestPlayerName(t *testing.T) {
	assert.Equal(t, "Taro", reservation.NewPlayerName("  Taro\t").String())
	assert.True(t, reservation.NewPlayerName("   ").IsEmpty())
}
