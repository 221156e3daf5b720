// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

// SpinTracker owns the in-memory spin sessions. Every read-modify-write of a
// wheel runs under that wheel's lock so edits and spins never interleave.
type SpinTracker struct {
	mu     sync.Mutex
	wheels map[string]*trackedWheel

	now func() time.Time
	rng wheel.RNG
}

type trackedWheel struct {
	mu       sync.Mutex
	session  *wheel.Session
	settings wheel.Settings // as of the last spin start
	saved    string         // plan id whose rotation was persisted
}

// NewSpinTracker uses the wall clock and the process-wide random source.
func NewSpinTracker() *SpinTracker {
	return NewSpinTrackerWith(time.Now, wheel.StdRNG{})
}

// NewSpinTrackerWith lets tests pin the clock and randomness. rng must be
// safe for concurrent use if several wheels spin at once.
func NewSpinTrackerWith(now func() time.Time, rng wheel.RNG) *SpinTracker {
	return &SpinTracker{
		wheels: make(map[string]*trackedWheel),
		now:    now,
		rng:    rng,
	}
}

func (t *SpinTracker) entry(wheelID string) *trackedWheel {
	t.mu.Lock()
	defer t.mu.Unlock()

	tw, ok := t.wheels[wheelID]
	if !ok {
		tw = &trackedWheel{session: wheel.NewSession(wheel.State{})}
		t.wheels[wheelID] = tw
	}
	return tw
}

// with runs fn while holding the wheel's lock. Entries for unknown wheels
// are dropped again.
func (t *SpinTracker) with(wheelID string, fn func(tw *trackedWheel) error) error {
	tw := t.entry(wheelID)
	tw.mu.Lock()
	err := fn(tw)
	tw.mu.Unlock()

	if errors.Is(err, store.ErrWheelNotFound) {
		t.Forget(wheelID)
	}
	return err
}

// Spinning reports whether wheelID has a plan in flight.
func (t *SpinTracker) Spinning(wheelID string) bool {
	t.mu.Lock()
	tw, ok := t.wheels[wheelID]
	t.mu.Unlock()
	if !ok {
		return false
	}

	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.session.Spinning()
}

// Forget drops the session of a deleted wheel.
func (t *SpinTracker) Forget(wheelID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.wheels, wheelID)
}
