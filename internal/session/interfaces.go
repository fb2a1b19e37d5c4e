// Package session manages the client's single local session slot.
//
// A session is one timestamp: the moment of the last successful login. The
// slot lives in a file so that it survives client restarts, mirroring a
// browser's local storage. There is no locking; the last writer wins.
//
// The [Manager] is the only consumer-facing type. [Clock] and [Store] are
// injected so that expiry behaviour can be tested with fakes.
package session

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Store persists the session slot.
type Store interface {
	// Read returns the stored session start time. ok is false when the slot
	// is absent or unreadable; err reports only genuine I/O failures.
	Read() (startedAt time.Time, ok bool, err error)

	// Write stores the session start time, replacing any previous slot.
	Write(startedAt time.Time) error

	// Clear removes the slot. Clearing an absent slot is not an error.
	Clear() error
}
