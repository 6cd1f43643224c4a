// Package clock provides a mock for time package.
package clock

import (
	"sync"
	"time"
)

// C is a source of the current time.
type C interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// Mock returns MockNow until it is moved with Set or Advance.
type Mock struct {
	mu      sync.Mutex
	MockNow time.Time
}

func (c *Mock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.MockNow
}

func (c *Mock) Set(t time.Time) {
	c.mu.Lock()
	c.MockNow = t
	c.mu.Unlock()
}

func (c *Mock) Advance(d time.Duration) {
	c.mu.Lock()
	c.MockNow = c.MockNow.Add(d)
	c.mu.Unlock()
}
