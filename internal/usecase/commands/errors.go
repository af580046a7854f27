package commands

import (
	"fmt"
	"time"

	"stadium-scheduler/internal/domain/reservation"
	"stadium-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// SlotConflictError matches errs.ErrSlotConflict and records which rule refused the slot.
type SlotConflictError struct {
	Policy    reservation.SlotPolicy
	StadiumID uuid.UUID
	SlotStart time.Time
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: stadium %s at %s (%s)",
		errs.ErrSlotConflict.Error(), e.StadiumID, e.SlotStart.Format(time.RFC3339), e.Policy)
}

func (e *SlotConflictError) Is(target error) bool {
	return target == errs.ErrSlotConflict
}

func newSlotConflict(policy reservation.SlotPolicy, stadiumID uuid.UUID, slot reservation.Slot) error {
	return &SlotConflictError{Policy: policy, StadiumID: stadiumID, SlotStart: slot.Start()}
}
