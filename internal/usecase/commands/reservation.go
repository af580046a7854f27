package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/infra"
	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/pkg/metrics"
	"stadium-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	UserID          uuid.UUID
	StadiumID       uuid.UUID
	ReservationTime time.Time
	PlayerName      string
}

type ReservationResult struct {
	ID              uuid.UUID
	StadiumID       uuid.UUID
	UserID          uuid.UUID
	PlayerName      string
	ReservationTime time.Time
	Status          reservation.Status
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*ReservationResult, error)
	// CreatePinnedReservation books the slot and the same slot one week later, returning week 1.
	CreatePinnedReservation(ctx context.Context, req CreateReservationRequest) (*ReservationResult, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (bool, error)
	RollPinnedReservations(ctx context.Context, today time.Time) (*RollResult, error)
}

type reservationUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) ReservationCommands {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationUseCaseImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		loc:      loc,
		logger:   logger,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (*ReservationResult, error) {
	at := req.ReservationTime.In(uc.loc)
	policy := reservation.PolicyCanceledFreesSlot

	var created *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireStadium(ctx, tx.Reads(), req.StadiumID); err != nil {
			return err
		}

		slot := reservation.NewSlot(at)
		occupancy, err := findOccupant(ctx, tx.Reads(), req.StadiumID, slot)
		if err != nil {
			return err
		}
		if !policy.Allows(occupancy) {
			return newSlotConflict(policy, req.StadiumID, slot)
		}

		res, err := reservation.NewReservation(req.StadiumID, req.UserID, at, reservation.NewPlayerName(req.PlayerName))
		if err != nil {
			return err
		}
		if err := save(ctx, tx, res, policy); err != nil {
			return err
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordReservation(metrics.KindReserved)
	return toResult(created), nil
}

func (uc *reservationUseCaseImpl) CreatePinnedReservation(ctx context.Context, req CreateReservationRequest) (*ReservationResult, error) {
	at := req.ReservationTime.In(uc.loc)
	policy := reservation.PolicyAnyOccupantBlocks

	var week1 *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireStadium(ctx, tx.Reads(), req.StadiumID); err != nil {
			return err
		}

		slot := reservation.NewSlot(at)
		occupancy, err := findOccupant(ctx, tx.Reads(), req.StadiumID, slot)
		if err != nil {
			return err
		}
		if !policy.Allows(occupancy) {
			return newSlotConflict(policy, req.StadiumID, slot)
		}

		first, second, err := reservation.NewPinnedPair(req.StadiumID, req.UserID, at, reservation.NewPlayerName(req.PlayerName))
		if err != nil {
			return err
		}
		// a live booking at T+7d trips the unique index and rolls back both rows
		for _, res := range []*reservation.Reservation{first, second} {
			if err := save(ctx, tx, res, policy); err != nil {
				return err
			}
		}
		week1 = first
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordReservation(metrics.KindPinned)
	return toResult(week1), nil
}

func (uc *reservationUseCaseImpl) CancelReservation(ctx context.Context, id uuid.UUID) (bool, error) {
	snap, err := uc.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.RecordCancellation(metrics.ResultNotFound)
			return false, errs.Wrapf(errs.ErrReservationNotFound, "reservation %s", id)
		}
		metrics.RecordCancellation(metrics.ResultFailed)
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.notifyFollowers(ctx, snap)

	var rows int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		rows, cerr = tx.Reservations().CancelByID(ctx, tx.DB(), id)
		return cerr
	})
	if err != nil {
		metrics.RecordCancellation(metrics.ResultFailed)
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if snap.ToDomain().IsPinned() {
		uc.cancelNextWeek(ctx, snap)
	}

	if rows == 0 {
		metrics.RecordCancellation(metrics.ResultNoop)
		uc.logger.Warn("cancel updated no rows", "reservation_id", id)
		return false, errs.Wrapf(errs.ErrInternalConsistencyFault, "reservation %s was read but not updated", id)
	}

	metrics.RecordCancellation(metrics.ResultSuccess)
	return true, nil
}

// cancelNextWeek cancels whatever occupies the same stadium-hour one week later.
// Failures are logged only; the primary cancellation already committed.
func (uc *reservationUseCaseImpl) cancelNextWeek(ctx context.Context, snap *shared.ReservationSnapshot) {
	slot := reservation.NewSlot(snap.ReservationTime.In(uc.loc)).AddWeeks(1)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		next, err := tx.Reads().ReservationByStadiumAndHour(ctx, snap.StadiumID, slot.Start(), slot.End())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		_, err = tx.Reservations().CancelByID(ctx, tx.DB(), next.ID)
		return err
	})
	if err != nil {
		uc.logger.Error("failed to cancel next week's pinned instance",
			"reservation_id", snap.ID,
			"stadium_id", snap.StadiumID,
			"slot", slot.Start(),
			"error", err.Error())
	}
}

func requireStadium(ctx context.Context, reads shared.CommandReads, stadiumID uuid.UUID) error {
	if _, err := reads.StadiumByID(ctx, stadiumID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(errs.ErrStadiumNotFound, "stadium %s", stadiumID)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func findOccupant(ctx context.Context, reads shared.CommandReads, stadiumID uuid.UUID, slot reservation.Slot) (reservation.Occupancy, error) {
	snap, err := reads.ReservationByStadiumAndHour(ctx, stadiumID, slot.Start(), slot.End())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.Vacant(), nil
		}
		return reservation.Occupancy{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return snap.ToDomain().Occupancy(), nil
}

func save(ctx context.Context, tx shared.Tx, res *reservation.Reservation, policy reservation.SlotPolicy) error {
	if _, err := tx.Reservations().Save(ctx, tx.DB(), res); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return newSlotConflict(policy, res.StadiumID(), res.Slot())
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func toResult(res *reservation.Reservation) *ReservationResult {
	return &ReservationResult{
		ID:              res.ID(),
		StadiumID:       res.StadiumID(),
		UserID:          res.UserID(),
		PlayerName:      res.PlayerName().String(),
		ReservationTime: res.Time(),
		Status:          res.Status(),
	}
}
