// Package clock provides the current instant to time-dependent components.
// Production code receives System; tests inject Fixed so booking rules are deterministic.
package clock

import (
	"sync"
	"time"

	"vetclinic/shared/timezone"
)

type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the application timezone.
type System struct{}

func New() Clock {
	return System{}
}

func (System) Now() time.Time {
	return timezone.Now()
}

// Fixed is a settable clock for tests.
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (f *Fixed) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.now
}

func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = now
}

func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}
