//go:build unit || e2e

package builder

import (
	"time"

	"stadium-scheduler/internal/domain/reservation"
	reqdto "stadium-scheduler/internal/handler/dto/request"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/usecase/commands"
	"stadium-scheduler/internal/usecase/queries"
	"stadium-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var tokyo = mustLoad("Asia/Tokyo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 9*60*60)
	}
	return loc
}

// Tokyo is the schedule zone the builders default to.
func Tokyo() *time.Location {
	return tokyo
}

type ReservationBuilder struct {
	ID         uuid.UUID
	StadiumID  uuid.UUID
	UserID     uuid.UUID
	PlayerName string
	Time       time.Time
	Status     reservation.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, tokyo)
	return &ReservationBuilder{
		ID:         uuid.New(),
		StadiumID:  uuid.New(),
		UserID:     uuid.New(),
		PlayerName: "Taro Yamada",
		Time:       time.Date(2026, 3, 10, 18, 30, 0, 0, tokyo),
		Status:     reservation.StatusReserved,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.StadiumID, b.UserID,
		b.Time,
		b.Status,
		reservation.NewPlayerName(b.PlayerName),
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		StadiumID:       b.StadiumID,
		UserID:          b.UserID,
		PlayerName:      b.PlayerName,
		ReservationTime: pgtype.Timestamptz{Time: b.Time, Valid: true},
		SlotHour:        pgtype.Timestamptz{Time: reservation.NewSlot(b.Time).Start(), Valid: true},
		Status:          b.Status.String(),
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		StadiumID:       b.StadiumID,
		ReservationTime: b.Time,
		PlayerName:      b.PlayerName,
	}
}

func (b *ReservationBuilder) BuildResult() *commands.ReservationResult {
	return &commands.ReservationResult{
		ID:              b.ID,
		StadiumID:       b.StadiumID,
		UserID:          b.UserID,
		PlayerName:      b.PlayerName,
		ReservationTime: b.Time,
		Status:          b.Status,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		StadiumID:       b.StadiumID,
		UserID:          b.UserID,
		PlayerName:      b.PlayerName,
		ReservationTime: b.Time,
		SlotStart:       reservation.NewSlot(b.Time).Start(),
		Status:          b.Status.String(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:              b.ID,
		StadiumID:       b.StadiumID,
		UserID:          b.UserID,
		PlayerName:      b.PlayerName,
		ReservationTime: b.Time,
		Status:          b.Status,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithStadiumID(stadiumID uuid.UUID) *ReservationBuilder {
	b.StadiumID = stadiumID
	return b
}

func (b *ReservationBuilder) WithUserID(userID uuid.UUID) *ReservationBuilder {
	b.UserID = userID
	return b
}

func (b *ReservationBuilder) WithPlayerName(name string) *ReservationBuilder {
	b.PlayerName = name
	return b
}

func (b *ReservationBuilder) WithTime(t time.Time) *ReservationBuilder {
	b.Time = t
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) AsPinned() *ReservationBuilder {
	b.Status = reservation.StatusPinned
	return b
}

func (b *ReservationBuilder) AsCanceled() *ReservationBuilder {
	b.Status = reservation.StatusCanceled
	return b
}
