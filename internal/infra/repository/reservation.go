package repository

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

import (
	"context"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/infra/repository/converter"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	UpsertReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertReservationParams) (uuid.UUID, error)
	CancelReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToUpsertParams(res)

	resultID, err := r.queries.UpsertReservation(ctx, r.pick(tx), params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to save reservation", err)
	}

	return resultID, nil
}

func (r *ReservationRepository) CancelByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error) {
	rows, err := r.queries.CancelReservationByID(ctx, r.pick(tx), id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return rows, nil
}

func (r *ReservationRepository) pick(tx sqlc.DBTX) sqlc.DBTX {
	if tx != nil {
		return tx
	}
	return r.db
}
