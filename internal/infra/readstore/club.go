package readstore

import (
	"context"

	"stadium-scheduler/internal/infra"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/pkg/pgconv"
	"stadium-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClubReadQueries interface {
	GetClubByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Clubs, error)
	GetStadiumByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Stadiums, error)
	ListFollowerEmailsByClub(ctx context.Context, db sqlc.DBTX, clubID uuid.UUID) ([]string, error)
	ExistsClubFollower(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsClubFollowerParams) (bool, error)
}

type ClubReadStore struct {
	queries ClubReadQueries
	db      sqlc.DBTX
}

func NewClubReadStore(queries ClubReadQueries, db sqlc.DBTX) *ClubReadStore {
	return &ClubReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClubReadStore) FindClubByID(ctx context.Context, id uuid.UUID) (*queries.ClubView, error) {
	row, err := r.queries.GetClubByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("club not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find club by ID", err)
	}
	return &queries.ClubView{ID: row.ID, Name: row.Name}, nil
}

func (r *ClubReadStore) FindStadiumByID(ctx context.Context, id uuid.UUID) (*queries.StadiumView, error) {
	row, err := r.queries.GetStadiumByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stadium not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stadium by ID", err)
	}
	return &queries.StadiumView{ID: row.ID, ClubID: row.ClubID, Name: row.Name}, nil
}

func (r *ClubReadStore) FindFollowerEmails(ctx context.Context, clubID uuid.UUID) ([]string, error) {
	emails, err := r.queries.ListFollowerEmailsByClub(ctx, r.db, clubID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list followers of club", err)
	}
	return emails, nil
}

func (r *ClubReadStore) IsFollowing(ctx context.Context, userID, clubID uuid.UUID) (bool, error) {
	params := sqlc.ExistsClubFollowerParams{UserID: userID, ClubID: clubID}
	ok, err := r.queries.ExistsClubFollower(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check club follower", err)
	}
	return ok, nil
}
