package reservation

import (
	"strings"
	"time"
)

const (
	SlotLength     = time.Hour
	RecurrenceDays = 7
)

// Slot is the stadium-hour a reservation time falls into.
type Slot struct {
	at time.Time
}

func NewSlot(at time.Time) Slot {
	return Slot{at: at}
}

func (s Slot) Time() time.Time {
	return s.at
}

// Start floors to the hour in the time's own location, so zones with
// half-hour offsets still get wall-clock hour buckets.
func (s Slot) Start() time.Time {
	t := s.at
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func (s Slot) End() time.Time {
	return s.Start().Add(SlotLength)
}

func (s Slot) AddWeeks(n int) Slot {
	return Slot{at: s.at.AddDate(0, 0, n*RecurrenceDays)}
}

func (s Slot) IsZero() bool {
	return s.at.IsZero()
}

// DayBounds returns [00:00, next 00:00) of day in loc.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = day.Location()
	}
	d := day.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// RollForwardTime places instance's time of day on the date one week after day.
func RollForwardTime(instance, day time.Time) time.Time {
	loc := day.Location()
	i := instance.In(loc)
	next := day.AddDate(0, 0, RecurrenceDays)
	return time.Date(next.Year(), next.Month(), next.Day(), i.Hour(), i.Minute(), i.Second(), i.Nanosecond(), loc)
}

// Occupancy is what a slot lookup found in a stadium-hour.
type Occupancy struct {
	present bool
	status  Status
}

func Vacant() Occupancy {
	return Occupancy{}
}

func OccupiedBy(status Status) Occupancy {
	return Occupancy{present: true, status: status}
}

func (o Occupancy) IsVacant() bool {
	return !o.present
}

func (o Occupancy) Status() (Status, bool) {
	return o.status, o.present
}

type PlayerName struct {
	value string
}

func NewPlayerName(value string) PlayerName {
	return PlayerName{value: strings.TrimSpace(value)}
}

func (n PlayerName) String() string {
	return n.value
}

func (n PlayerName) IsEmpty() bool {
	return n.value == ""
}
