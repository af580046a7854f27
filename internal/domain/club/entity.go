package club

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrMissingClub     = errors.New("club id is required")
	ErrMissingFollower = errors.New("follower user id is required")
)

// Follower links a user to a club whose stadium cancellations they are mailed about.
type Follower struct {
	userID uuid.UUID
	clubID uuid.UUID
}

func NewFollower(userID, clubID uuid.UUID) (*Follower, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingFollower
	}
	if clubID == uuid.Nil {
		return nil, ErrMissingClub
	}
	return &Follower{userID: userID, clubID: clubID}, nil
}

func (f *Follower) UserID() uuid.UUID { return f.userID }
func (f *Follower) ClubID() uuid.UUID { return f.clubID }
