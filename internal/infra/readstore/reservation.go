package readstore

import (
	"context"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/pkg/pgconv"
	"stadium-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByStadiumAndTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByStadiumAndTimeRangeParams) (sqlc.Reservations, error)
	ListReservationsByStadiumAndTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByStadiumAndTimeRangeParams) ([]sqlc.Reservations, error)
	ListPinnedReservationsByTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPinnedReservationsByTimeRangeParams) ([]sqlc.Reservations, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
	loc     *time.Location
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX, loc *time.Location) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return r.toView(row)
}

// FindByStadiumAndHourRange returns the occupant of [from, to). Live rows win over CANCELED ones.
func (r *ReservationReadStore) FindByStadiumAndHourRange(ctx context.Context, stadiumID uuid.UUID, from, to time.Time) (*queries.ReservationView, error) {
	params := sqlc.GetReservationByStadiumAndTimeRangeParams{
		StadiumID: stadiumID,
		FromTime:  pgconv.TimeToPgtype(from),
		ToTime:    pgconv.TimeToPgtype(to),
	}

	row, err := r.queries.GetReservationByStadiumAndTimeRange(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot is vacant", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation in slot", err)
	}

	return r.toView(row)
}

func (r *ReservationReadStore) FindByStadiumAndDateRange(ctx context.Context, stadiumID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	params := sqlc.ListReservationsByStadiumAndTimeRangeParams{
		StadiumID: stadiumID,
		FromTime:  pgconv.TimeToPgtype(from),
		ToTime:    pgconv.TimeToPgtype(to),
	}

	rows, err := r.queries.ListReservationsByStadiumAndTimeRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations of stadium", err)
	}

	return r.toViews(rows)
}

// FindByStadiumAndDate lists the reservations of one calendar day in the store's zone.
func (r *ReservationReadStore) FindByStadiumAndDate(ctx context.Context, stadiumID uuid.UUID, date time.Time) ([]*queries.ReservationView, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.location())
	return r.FindByStadiumAndDateRange(ctx, stadiumID, from, from.AddDate(0, 0, 1))
}

func (r *ReservationReadStore) FindPinnedByDate(ctx context.Context, from, to time.Time) ([]*queries.ReservationView, error) {
	params := sqlc.ListPinnedReservationsByTimeRangeParams{
		FromTime: pgconv.TimeToPgtype(from),
		ToTime:   pgconv.TimeToPgtype(to),
	}

	rows, err := r.queries.ListPinnedReservationsByTimeRange(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pinned reservations", err)
	}

	return r.toViews(rows)
}

func (r *ReservationReadStore) location() *time.Location {
	if r.loc == nil {
		return time.UTC
	}
	return r.loc
}

func (r *ReservationReadStore) toViews(rows []sqlc.Reservations) ([]*queries.ReservationView, error) {
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		view, err := r.toView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func (r *ReservationReadStore) toView(row sqlc.Reservations) (*queries.ReservationView, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("reservation "+row.ID.String()+" has an unknown status", err, infra.KindDBFailure)
	}

	loc := r.location()
	return &queries.ReservationView{
		ID:              row.ID,
		StadiumID:       row.StadiumID,
		UserID:          row.UserID,
		PlayerName:      row.PlayerName,
		ReservationTime: pgconv.TimeInFromPgtype(row.ReservationTime, loc),
		SlotStart:       pgconv.TimeInFromPgtype(row.SlotHour, loc),
		Status:          status.String(),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
