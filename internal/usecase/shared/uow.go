package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Followers() FollowerRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	StadiumByID(ctx context.Context, id uuid.UUID) (*StadiumSnapshot, error)
	ClubByID(ctx context.Context, id uuid.UUID) (*ClubSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ReservationByStadiumAndHour returns the occupant of [from, to), live rows first.
	// A vacant range is a NOT_FOUND repository error.
	ReservationByStadiumAndHour(ctx context.Context, stadiumID uuid.UUID, from, to time.Time) (*ReservationSnapshot, error)
	PinnedReservationsByDay(ctx context.Context, from, to time.Time) ([]*ReservationSnapshot, error)
	FollowerEmailsByClub(ctx context.Context, clubID uuid.UUID) ([]string, error)
	IsFollowing(ctx context.Context, userID, clubID uuid.UUID) (bool, error)
}

type ReservationRepository interface {
	// Save inserts or updates by id.
	Save(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	CancelByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (int64, error)
}

type FollowerRepository interface {
	Follow(ctx context.Context, tx sqlc.DBTX, userID, clubID uuid.UUID) error
	Unfollow(ctx context.Context, tx sqlc.DBTX, userID, clubID uuid.UUID) (int64, error)
}

// Notifier delivers a single message; implementations may queue it.
type Notifier interface {
	SendNotification(ctx context.Context, to, subject, body string) error
}
