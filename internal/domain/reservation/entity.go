package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrMissingStadium   = errors.New("stadium id is required")
	ErrMissingUser      = errors.New("user id is required")
	ErrMissingTime      = errors.New("reservation time is required")
	ErrNotPinnedSource  = errors.New("only pinned reservations roll forward")
)

type Reservation struct {
	id         uuid.UUID
	stadiumID  uuid.UUID
	userID     uuid.UUID
	slot       Slot
	status     Status
	playerName PlayerName
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(stadiumID, userID uuid.UUID, at time.Time, playerName PlayerName) (*Reservation, error) {
	return newReservation(stadiumID, userID, at, playerName, StatusReserved)
}

// NewPinnedPair builds the week-1 instance and its week-2 sibling. Both must be
// persisted in the same transaction.
func NewPinnedPair(stadiumID, userID uuid.UUID, at time.Time, playerName PlayerName) (*Reservation, *Reservation, error) {
	first, err := newReservation(stadiumID, userID, at, playerName, StatusPinned)
	if err != nil {
		return nil, nil, err
	}
	second, err := newReservation(stadiumID, userID, first.slot.AddWeeks(1).Time(), playerName, StatusPinned)
	if err != nil {
		return nil, nil, err
	}
	return first, second, nil
}

// NewRolledInstance copies a pinned reservation onto a later time.
func NewRolledInstance(source *Reservation, at time.Time) (*Reservation, error) {
	if !source.IsPinned() {
		return nil, ErrNotPinnedSource
	}
	return newReservation(source.stadiumID, source.userID, at, source.playerName, StatusPinned)
}

func newReservation(stadiumID, userID uuid.UUID, at time.Time, playerName PlayerName, status Status) (*Reservation, error) {
	if stadiumID == uuid.Nil {
		return nil, ErrMissingStadium
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if at.IsZero() {
		return nil, ErrMissingTime
	}
	return &Reservation{
		id:         uuid.New(),
		stadiumID:  stadiumID,
		userID:     userID,
		slot:       NewSlot(at),
		status:     status,
		playerName: playerName,
	}, nil
}

func ReconstructReservation(
	id, stadiumID, userID uuid.UUID,
	at time.Time,
	status Status,
	playerName PlayerName,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		stadiumID:  stadiumID,
		userID:     userID,
		slot:       NewSlot(at),
		status:     status,
		playerName: playerName,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) IsPinned() bool {
	return r.status == StatusPinned
}

// Occupancy is how this record counts against its stadium-hour.
func (r *Reservation) Occupancy() Occupancy {
	return OccupiedBy(r.status)
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) StadiumID() uuid.UUID   { return r.stadiumID }
func (r *Reservation) UserID() uuid.UUID      { return r.userID }
func (r *Reservation) Slot() Slot             { return r.slot }
func (r *Reservation) Time() time.Time        { return r.slot.Time() }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) PlayerName() PlayerName { return r.playerName }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
