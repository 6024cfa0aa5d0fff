package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type zonedClock struct {
	loc *time.Location
}

// NewZonedClock reports the current time on the wall clock of loc.
func NewZonedClock(loc *time.Location) Clock {
	return zonedClock{loc: loc}
}

func (c zonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable Clock for tests. It is safe for use by the
// background workers it is injected into.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
