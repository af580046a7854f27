package reservation

import "fmt"

type Status string

const (
	StatusReserved Status = "RESERVED"
	StatusPinned   Status = "PINNED"
	StatusCanceled Status = "CANCELED"
)

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusPinned, StatusCanceled:
		return true
	default:
		return false
	}
}

// SlotPolicy decides whether an hour that already holds a record can be booked.
type SlotPolicy int

const (
	// A CANCELED occupant frees the hour. Used for plain reservations.
	PolicyCanceledFreesSlot SlotPolicy = iota + 1
	// Any record in the hour blocks it, CANCELED included. Used for pinned
	// reservations and the weekly roller.
	PolicyAnyOccupantBlocks
)

func (p SlotPolicy) String() string {
	switch p {
	case PolicyCanceledFreesSlot:
		return "canceled_frees_slot"
	case PolicyAnyOccupantBlocks:
		return "any_occupant_blocks"
	default:
		return "unknown"
	}
}

func (p SlotPolicy) Allows(o Occupancy) bool {
	if o.IsVacant() {
		return true
	}
	switch p {
	case PolicyCanceledFreesSlot:
		switch o.status {
		case StatusCanceled:
			return true
		case StatusReserved, StatusPinned:
			return false
		}
		return false
	case PolicyAnyOccupantBlocks:
		return false
	}
	return false
}
