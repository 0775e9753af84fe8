package services

import (
	"time"
)

// Clock is the engine's time source. Registration times, purchase times and
// tournament windows all come from here so tests can pin the clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
