package session

import "time"

// systemClock is the production [Clock] backed by time.Now.
type systemClock struct{}

// NewSystemClock returns the wall-clock [Clock] used outside of tests.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
