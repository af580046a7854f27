package commands

import (
	"context"
	"fmt"

	"stadium-scheduler/internal/pkg/metrics"
	"stadium-scheduler/internal/usecase/shared"
)

const notificationTimeLayout = "2006-01-02 15:04"

// notifyFollowers tells every follower of the stadium's club that the slot is open again.
// Nothing here fails the cancellation.
func (uc *reservationUseCaseImpl) notifyFollowers(ctx context.Context, snap *shared.ReservationSnapshot) {
	reads := uc.uow.CommandReads()
	log := uc.logger.With("reservation_id", snap.ID, "stadium_id", snap.StadiumID)

	stadium, err := reads.StadiumByID(ctx, snap.StadiumID)
	if err != nil {
		metrics.RecordNotification(metrics.ResultFailed)
		log.Warn("skip follower notification: stadium lookup failed", "error", err.Error())
		return
	}

	club, err := reads.ClubByID(ctx, stadium.ClubID)
	if err != nil {
		metrics.RecordNotification(metrics.ResultFailed)
		log.Warn("skip follower notification: club lookup failed", "club_id", stadium.ClubID, "error", err.Error())
		return
	}

	emails, err := reads.FollowerEmailsByClub(ctx, club.ID)
	if err != nil {
		metrics.RecordNotification(metrics.ResultFailed)
		log.Warn("skip follower notification: follower lookup failed", "club_id", club.ID, "error", err.Error())
		return
	}

	subject, body := cancellationMessage(club.Name, stadium.Name, snap.ReservationTime.In(uc.loc).Format(notificationTimeLayout))
	for _, to := range emails {
		if err := uc.notifier.SendNotification(ctx, to, subject, body); err != nil {
			metrics.RecordNotification(metrics.ResultFailed)
			log.Warn("follower notification failed", "to", to, "error", err.Error())
			continue
		}
		metrics.RecordNotification(metrics.ResultSuccess)
	}
}

func cancellationMessage(clubName, stadiumName, slot string) (string, string) {
	subject := fmt.Sprintf("A slot just opened at %s", clubName)
	body := fmt.Sprintf("The reservation at %s in stadium %s has been canceled. Book it before someone else does.", slot, stadiumName)
	return subject, body
}
