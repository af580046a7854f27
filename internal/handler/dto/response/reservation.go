package response

import (
	"time"

	"stadium-scheduler/internal/usecase/commands"
	"stadium-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	StadiumID       uuid.UUID  `json:"stadiumId"`
	UserID          uuid.UUID  `json:"userId"`
	PlayerName      string     `json:"playerName"`
	ReservationTime time.Time  `json:"reservationTime"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type CancelReservationResponse struct {
	Canceled bool `json:"canceled"`
}

func FromReservationResult(r *commands.ReservationResult) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID,
		StadiumID:       r.StadiumID,
		UserID:          r.UserID,
		PlayerName:      r.PlayerName,
		ReservationTime: r.ReservationTime,
		Status:          r.Status.String(),
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	createdAt, updatedAt := v.CreatedAt, v.UpdatedAt
	return &ReservationResponse{
		ID:              v.ID,
		StadiumID:       v.StadiumID,
		UserID:          v.UserID,
		PlayerName:      v.PlayerName,
		ReservationTime: v.ReservationTime,
		Status:          v.Status,
		CreatedAt:       &createdAt,
		UpdatedAt:       &updatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}
