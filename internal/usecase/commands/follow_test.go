//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"stadium-scheduler/internal/domain/club"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/usecase/commands"
	"stadium-scheduler/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowFixture(t *testing.T) (*memstore.Store, commands.FollowCommands, uuid.UUID, uuid.UUID) {
	t.Helper()
	store := memstore.New(nil)
	clubID := store.AddClub("Kanto United")
	userID := store.AddUser("fan@example.com")
	return store, commands.NewFollowCommands(store, nil), userID, clubID
}

func TestFollowClub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, cmds, userID, clubID := newFollowFixture(t)

		require.NoError(t, cmds.FollowClub(context.Background(), userID, clubID))
		assert.True(t, store.IsFollowing(userID, clubID))
	})

	t.Run("unknown club", func(t *testing.T) {
		store, cmds, userID, _ := newFollowFixture(t)
		clubID := uuid.New()

		err := cmds.FollowClub(context.Background(), userID, clubID)
		assert.ErrorIs(t, err, errs.ErrClubNotFound)
		assert.False(t, store.IsFollowing(userID, clubID))
	})

	t.Run("already following", func(t *testing.T) {
		store, cmds, userID, clubID := newFollowFixture(t)
		store.AddFollower(userID, clubID)

		err := cmds.FollowClub(context.Background(), userID, clubID)
		assert.ErrorIs(t, err, errs.ErrAlreadyFollowing)
	})

	t.Run("lookup failure", func(t *testing.T) {
		store, cmds, userID, clubID := newFollowFixture(t)
		store.ReadErr = func(op string) error {
			if op == "IsFollowing" {
				return errors.New("timeout")
			}
			return nil
		}

		err := cmds.FollowClub(context.Background(), userID, clubID)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, store.IsFollowing(userID, clubID))
	})
}

func TestUnfollowClub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store, cmds, userID, clubID := newFollowFixture(t)
		store.AddFollower(userID, clubID)

		require.NoError(t, cmds.UnfollowClub(context.Background(), userID, clubID))
		assert.False(t, store.IsFollowing(userID, clubID))
	})

	t.Run("not following is a no-op", func(t *testing.T) {
		store, cmds, userID, clubID := newFollowFixture(t)

		require.NoError(t, cmds.UnfollowClub(context.Background(), userID, clubID))
		assert.Equal(t, 1, store.Commits())
	})

	t.Run("unknown club", func(t *testing.T) {
		_, cmds, userID, _ := newFollowFixture(t)

		err := cmds.UnfollowClub(context.Background(), userID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrClubNotFound)
	})
}

func TestFollowClubRejectsNilUser(t *testing.T) {
	store, cmds, _, clubID := newFollowFixture(t)

	err := cmds.FollowClub(context.Background(), uuid.Nil, clubID)
	assert.ErrorIs(t, err, club.ErrMissingFollower)
	assert.Zero(t, store.Commits())
}
