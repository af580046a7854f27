package commands

//go:generate mockgen -source=follow.go -destination=../../../tests/mock/commands/follow.go -package=commandsmock

import (
	"context"
	"log/slog"

	"stadium-scheduler/internal/domain/club"
	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type FollowCommands interface {
	FollowClub(ctx context.Context, userID, clubID uuid.UUID) error
	// UnfollowClub is a no-op when the user does not follow the club.
	UnfollowClub(ctx context.Context, userID, clubID uuid.UUID) error
}

type followUseCaseImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewFollowCommands(uow shared.UnitOfWork, logger *slog.Logger) FollowCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &followUseCaseImpl{uow: uow, logger: logger}
}

func (uc *followUseCaseImpl) FollowClub(ctx context.Context, userID, clubID uuid.UUID) error {
	follower, err := club.NewFollower(userID, clubID)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireClub(ctx, tx.Reads(), clubID); err != nil {
			return err
		}

		following, err := tx.Reads().IsFollowing(ctx, follower.UserID(), follower.ClubID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if following {
			return errs.Wrapf(errs.ErrAlreadyFollowing, "user %s club %s", userID, clubID)
		}

		if err := tx.Followers().Follow(ctx, tx.DB(), follower.UserID(), follower.ClubID()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(errs.ErrAlreadyFollowing, "user %s club %s", userID, clubID)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *followUseCaseImpl) UnfollowClub(ctx context.Context, userID, clubID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireClub(ctx, tx.Reads(), clubID); err != nil {
			return err
		}

		rows, err := tx.Followers().Unfollow(ctx, tx.DB(), userID, clubID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if rows == 0 {
			uc.logger.Debug("unfollow without follow", "user_id", userID, "club_id", clubID)
		}
		return nil
	})
}

func requireClub(ctx context.Context, reads shared.CommandReads, clubID uuid.UUID) error {
	if _, err := reads.ClubByID(ctx, clubID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(errs.ErrClubNotFound, "club %s", clubID)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
