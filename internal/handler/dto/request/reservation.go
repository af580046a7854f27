package request

import (
	"strings"
	"time"

	"stadium-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type CreateReservationRequest struct {
	StadiumID       uuid.UUID `json:"stadiumId" binding:"required"`
	ReservationTime time.Time `json:"reservationTime" binding:"required"`
	PlayerName      string    `json:"playerName" binding:"max=100"`
}

func (r CreateReservationRequest) ToCommand(userID uuid.UUID) commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		UserID:          userID,
		StadiumID:       r.StadiumID,
		ReservationTime: r.ReservationTime,
		PlayerName:      strings.TrimSpace(r.PlayerName),
	}
}

// StadiumReservationsQuery selects either one day (date) or the next N days (days).
type StadiumReservationsQuery struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Days int    `form:"days" binding:"omitempty,min=1,max=90"`
}

func (q StadiumReservationsQuery) HasDate() bool {
	return strings.TrimSpace(q.Date) != ""
}

// ParseDate reads date as a calendar day in loc.
func (q StadiumReservationsQuery) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(q.Date), loc)
}
