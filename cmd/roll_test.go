//go:build unit

package main

import (
	"testing"
	"time"

	"stadium-scheduler/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 16, 30, 0, 0, time.UTC) // 01:30 on 03-02 in Tokyo

	t.Run("empty means today in the schedule zone", func(t *testing.T) {
		got, err := rollDate("", now, loc)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Day())
		assert.Equal(t, loc, got.Location())
	})

	t.Run("explicit date", func(t *testing.T) {
		got, err := rollDate("2026-03-09", now, loc)
		require.NoError(t, err)
		assert.True(t, time.Date(2026, 3, 9, 0, 0, 0, 0, loc).Equal(got))
	})

	t.Run("malformed date carries a stack", func(t *testing.T) {
		_, err := rollDate("09/03/2026", now, loc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --date")
		assert.NotNil(t, errors.GetReportableStackTrace(err))
	})
}

func TestRollOutcome(t *testing.T) {
	assert.NoError(t, rollOutcome(&commands.RollResult{Created: 3, Skipped: 1}))

	err := rollOutcome(&commands.RollResult{Created: 1, Failed: 2})
	require.Error(t, err)
	assert.Equal(t, "2 pinned reservations failed to roll", err.Error())
	assert.NotNil(t, errors.GetReportableStackTrace(err))
}
