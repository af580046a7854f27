package shared

import (
	"time"

	"stadium-scheduler/internal/domain/reservation"

	"github.com/google/uuid"
)

type StadiumSnapshot struct {
	ID     uuid.UUID
	ClubID uuid.UUID
	Name   string
}

type ClubSnapshot struct {
	ID   uuid.UUID
	Name string
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID              uuid.UUID
	StadiumID       uuid.UUID
	UserID          uuid.UUID
	PlayerName      string
	ReservationTime time.Time
	Status          reservation.Status
}

func (s *ReservationSnapshot) ToDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		s.ID, s.StadiumID, s.UserID,
		s.ReservationTime,
		s.Status,
		reservation.NewPlayerName(s.PlayerName),
		time.Time{}, time.Time{},
	)
}
