// Package store holds the in-memory entity collections the rest of the
// service reads from. Each store is an explicitly constructed object owning
// its own copy of the seed data; two instances never observe each other's
// writes. Every operation optionally sleeps a fixed per-operation duration
// to simulate network latency the way the original mock services did.
package store

import (
	"errors"
	"time"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// sleepFor pauses for d when latency simulation is on. Operations have no
// cancellation or timeout support; callers that go away simply discard the
// eventual result.
func sleepFor(simulate bool, d time.Duration) {
	if simulate {
		time.Sleep(d)
	}
}
