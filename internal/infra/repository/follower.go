package repository

//go:generate mockgen -source=follower.go -destination=../../../tests/mock/repository/follower.go -package=repositorymock

import (
	"context"

	"stadium-scheduler/internal/infra"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type FollowerWriteQueries interface {
	CreateClubFollower(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateClubFollowerParams) (uuid.UUID, error)
	DeleteClubFollower(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteClubFollowerParams) (int64, error)
}

type FollowerRepository struct {
	queries FollowerWriteQueries
	db      sqlc.DBTX
}

func NewFollowerRepository(queries FollowerWriteQueries, db sqlc.DBTX) *FollowerRepository {
	return &FollowerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *FollowerRepository) Follow(ctx context.Context, tx sqlc.DBTX, userID, clubID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	params := sqlc.CreateClubFollowerParams{UserID: userID, ClubID: clubID}
	if _, err := r.queries.CreateClubFollower(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to follow club", err)
	}
	return nil
}

func (r *FollowerRepository) Unfollow(ctx context.Context, tx sqlc.DBTX, userID, clubID uuid.UUID) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	params := sqlc.DeleteClubFollowerParams{UserID: userID, ClubID: clubID}
	rows, err := r.queries.DeleteClubFollower(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to unfollow club", err)
	}
	return rows, nil
}
