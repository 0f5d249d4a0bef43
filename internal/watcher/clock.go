package watcher

import "time"

// Clock abstracts wall-clock time so sweeps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
