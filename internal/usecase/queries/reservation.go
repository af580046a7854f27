package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

import (
	"context"
	"time"

	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultUpcomingDays = 14
	MaxUpcomingDays     = 90
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByStadiumAndDate(ctx context.Context, stadiumID uuid.UUID, date time.Time) ([]*ReservationView, error)
	// ListUpcoming lists [now, now+days). days <= 0 means DefaultUpcomingDays.
	ListUpcoming(ctx context.Context, stadiumID uuid.UUID, days int) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByStadiumAndDate(ctx context.Context, stadiumID uuid.UUID, date time.Time) ([]*ReservationView, error)
	FindByStadiumAndDateRange(ctx context.Context, stadiumID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
}

type StadiumReadStore interface {
	FindStadiumByID(ctx context.Context, id uuid.UUID) (*StadiumView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	stadiums     StadiumReadStore
	clock        clock.Clock
}

func NewReservationQueries(reservations ReservationReadStore, stadiums StadiumReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		stadiums:     stadiums,
		clock:        clk,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrReservationNotFound, "reservation %s", id)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ListByStadiumAndDate returns an empty list for an unknown stadium.
func (q *reservationQueriesImpl) ListByStadiumAndDate(ctx context.Context, stadiumID uuid.UUID, date time.Time) ([]*ReservationView, error) {
	views, err := q.reservations.FindByStadiumAndDate(ctx, stadiumID, date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) ListUpcoming(ctx context.Context, stadiumID uuid.UUID, days int) ([]*ReservationView, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	if days > MaxUpcomingDays {
		return nil, errs.Wrapf(errs.ErrInvalidRange, "days must be between 1 and %d, got %d", MaxUpcomingDays, days)
	}
	if err := q.requireStadium(ctx, stadiumID); err != nil {
		return nil, err
	}

	from := q.clock.Now()
	views, err := q.reservations.FindByStadiumAndDateRange(ctx, stadiumID, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *reservationQueriesImpl) requireStadium(ctx context.Context, stadiumID uuid.UUID) error {
	if _, err := q.stadiums.FindStadiumByID(ctx, stadiumID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(errs.ErrStadiumNotFound, "stadium %s", stadiumID)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
