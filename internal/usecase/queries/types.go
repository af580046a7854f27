package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	StadiumID       uuid.UUID `json:"stadium_id"`
	UserID          uuid.UUID `json:"user_id"`
	PlayerName      string    `json:"player_name"`
	ReservationTime time.Time `json:"reservation_time"`
	SlotStart       time.Time `json:"slot_start"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type StadiumView struct {
	ID     uuid.UUID `json:"id"`
	ClubID uuid.UUID `json:"club_id"`
	Name   string    `json:"name"`
}

type ClubView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
