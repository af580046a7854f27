package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query sides
var (
	// Lookup errors
	ErrStadiumNotFound     = errors.New("stadium not found")
	ErrClubNotFound        = errors.New("club not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Slot errors
	ErrSlotConflict = errors.New("time slot conflict")

	// Follow errors
	ErrAlreadyFollowing = errors.New("user already follows this club")

	// Validation errors
	ErrInvalidRange = errors.New("invalid range")

	// Operation errors
	ErrDatabaseOperationFailed  = errors.New("database operation failed")
	ErrInternalConsistencyFault = errors.New("internal consistency fault")
)
