// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/testutil"
)

var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testClock is a settable clock shared by a tracker and its test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fixedRNG always draws the same value.
type fixedRNG float64

func (f fixedRNG) Float64() float64 { return float64(f) }

type testEnv struct {
	db      *sql.DB
	cfg     cliparse.Config
	store   *store.Store
	tracker *SpinTracker
	clock   *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	clock := &testClock{now: testEpoch}

	return &testEnv{
		db:      db,
		cfg:     cfg,
		store:   testutil.NewTestStore(db, cfg),
		tracker: NewSpinTrackerWith(clock.Now, fixedRNG(0.5)),
		clock:   clock,
	}
}

func (e *testEnv) wheels() *WheelHandler {
	return NewWheelHandler(e.store, e.tracker, e.cfg)
}

func (e *testEnv) options() *OptionHandler {
	return NewOptionHandler(e.store, e.tracker, e.cfg)
}

func (e *testEnv) settings() *SettingsHandler {
	return NewSettingsHandler(e.store, e.tracker, e.cfg)
}

func (e *testEnv) spins() *SpinHandler {
	return NewSpinHandler(e.store, e.tracker, e.cfg)
}

func (e *testEnv) transfers() *TransferHandler {
	return NewTransferHandler(e.store, e.tracker, e.cfg)
}

// serve runs handler on req after setting alternating name/value path values.
func serve(handler http.HandlerFunc, req *http.Request, pathValues ...string) *httptest.ResponseRecorder {
	for i := 0; i+1 < len(pathValues); i += 2 {
		req.SetPathValue(pathValues[i], pathValues[i+1])
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}
