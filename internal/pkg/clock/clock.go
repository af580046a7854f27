package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type zonedClock struct {
	base Clock
	loc  *time.Location
}

// InLocation reports base's instants in loc.
func InLocation(base Clock, loc *time.Location) Clock {
	if loc == nil {
		return base
	}
	return &zonedClock{base: base, loc: loc}
}

func (c *zonedClock) Now() time.Time {
	return c.base.Now().In(c.loc)
}

// MockClock is safe for use from a worker goroutine and the test at once.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
