package converter

import (
	"stadium-scheduler/internal/domain/reservation"
	sqlc "stadium-scheduler/internal/infra/sqlc/generated"
	"stadium-scheduler/internal/pkg/pgconv"
)

// ReservationToUpsertParams stores the slot hour as computed in the reservation time's location.
func ReservationToUpsertParams(res *reservation.Reservation) sqlc.UpsertReservationParams {
	return sqlc.UpsertReservationParams{
		ID:              res.ID(),
		StadiumID:       res.StadiumID(),
		UserID:          res.UserID(),
		PlayerName:      res.PlayerName().String(),
		ReservationTime: pgconv.TimeToPgtype(res.Time()),
		SlotHour:        pgconv.TimeToPgtype(res.Slot().Start()),
		Status:          res.Status().String(),
	}
}
