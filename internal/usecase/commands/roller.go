package commands

import (
	"context"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/pkg/metrics"
	"stadium-scheduler/internal/usecase/shared"
)

type RollResult struct {
	// Day is the local date whose pinned reservations were rolled.
	Day        time.Time
	Candidates int
	Created    int
	Skipped    int
	Failed     int
}

// RollPinnedReservations copies every PINNED reservation of the day before today onto the
// same time one week later, unless that stadium-hour already holds any record.
// A zero today means now.
func (uc *reservationUseCaseImpl) RollPinnedReservations(ctx context.Context, today time.Time) (*RollResult, error) {
	if today.IsZero() {
		today = uc.clock.Now()
	}
	local := today.In(uc.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, uc.loc).AddDate(0, 0, -1)
	from, to := reservation.DayBounds(day, uc.loc)

	pinned, err := uc.uow.CommandReads().PinnedReservationsByDay(ctx, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &RollResult{Day: day, Candidates: len(pinned)}
	for _, p := range pinned {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		created, err := uc.rollOne(ctx, p, day)
		switch {
		case err != nil:
			result.Failed++
			uc.logger.Error("failed to roll pinned reservation",
				"reservation_id", p.ID,
				"stadium_id", p.StadiumID,
				"error", err.Error())
		case created:
			result.Created++
		default:
			result.Skipped++
		}
	}

	metrics.RecordRollerOutcome(metrics.OutcomeCreated, result.Created)
	metrics.RecordRollerOutcome(metrics.OutcomeSkipped, result.Skipped)
	metrics.RecordRollerOutcome(metrics.OutcomeFailed, result.Failed)

	uc.logger.Info("pinned reservations rolled",
		"day", day.Format(time.DateOnly),
		"candidates", result.Candidates,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed)

	return result, nil
}

func (uc *reservationUseCaseImpl) rollOne(ctx context.Context, p *shared.ReservationSnapshot, day time.Time) (bool, error) {
	source := p.ToDomain()
	target := reservation.RollForwardTime(source.Time(), day)
	policy := reservation.PolicyAnyOccupantBlocks

	created := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		occupancy, err := findOccupant(ctx, tx.Reads(), p.StadiumID, reservation.NewSlot(target))
		if err != nil {
			return err
		}
		if !policy.Allows(occupancy) {
			return nil
		}

		next, err := reservation.NewRolledInstance(source, target)
		if err != nil {
			return err
		}
		if _, err := tx.Reservations().Save(ctx, tx.DB(), next); err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		// a concurrent writer took the slot first
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return false, nil
		}
		return false, err
	}
	return created, nil
}
