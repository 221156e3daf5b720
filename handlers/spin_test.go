// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/testutil"
	"github.com/danielhkuo/quickly-spin/wheel"
)

func startSpin(t *testing.T, env *testEnv, wheelID string, body any) models.SpinResponse {
	t.Helper()

	req := testutil.MakeRequest("POST", "/wheels/"+wheelID+"/spin", body, nil)
	w := serve(env.spins().StartSpin, req, "id", wheelID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SpinResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func pollSpin(env *testEnv, wheelID, planID string) *httptest.ResponseRecorder {
	req := testutil.MakeRequest("GET", "/wheels/"+wheelID+"/spin?plan="+planID, nil, nil)
	return serve(env.spins().PollSpin, req, "id", wheelID)
}

func TestSpin_FullCycle(t *testing.T) {
	env := newTestEnv(t)

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg, "A", "B", "C")

	resp := startSpin(t, env, wheelID, nil)
	if !resp.Started || resp.Plan == nil {
		t.Fatalf("Expected spin to start, got %+v", resp)
	}
	plan := resp.Plan
	if plan.DurationMS != 3000 {
		t.Errorf("Expected 3000ms from default settings, got %d", plan.DurationMS)
	}
	if plan.Mode != models.ModeWeighted || plan.ReducedMotion {
		t.Errorf("Unexpected plan %+v", plan)
	}
	if !env.tracker.Spinning(wheelID) {
		t.Error("Expected wheel to be spinning")
	}

	// Second start while in flight is a no-op
	if again := startSpin(t, env, wheelID, nil); again.Started || again.Plan != nil {
		t.Errorf("Expected started=false while spinning, got %+v", again)
	}

	env.clock.Advance(time.Second)
	w := pollSpin(env, wheelID, plan.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var progress models.ProgressResponse
	testutil.AssertJSON(t, w, &progress)
	if progress.Done || progress.Result != nil {
		t.Fatalf("Expected spin in progress, got %+v", progress)
	}
	if math.Abs(progress.Progress-1.0/3) > 1e-9 {
		t.Errorf("Expected progress 1/3, got %v", progress.Progress)
	}

	env.clock.Advance(5 * time.Second)
	w = pollSpin(env, wheelID, plan.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var final models.ProgressResponse
	testutil.AssertJSON(t, w, &final)
	if !final.Done || final.Result == nil {
		t.Fatalf("Expected finished spin, got %+v", final)
	}

	res := final.Result
	opts := []wheel.Option{{Label: "A", Weight: 1}, {Label: "B", Weight: 1}, {Label: "C", Weight: 1}}
	if want := wheel.WinnerIndex(res.Rotation, opts, wheel.ModeWeighted); res.Index != want {
		t.Errorf("Result index %d does not match pointer position %d", res.Index, want)
	}
	if res.Option.Label != opts[res.Index].Label {
		t.Errorf("Expected winner %s, got %s", opts[res.Index].Label, res.Option.Label)
	}
	if res.Effects.SoundURL != WinnerSoundPath || !res.Effects.Confetti {
		t.Errorf("Expected sound and confetti, got %+v", res.Effects)
	}
	if env.tracker.Spinning(wheelID) {
		t.Error("Expected wheel to be idle after finishing")
	}

	rotation, err := env.store.LoadRotation(t.Context(), wheelID)
	if err != nil {
		t.Fatalf("Failed to load rotation: %v", err)
	}
	if math.Abs(rotation-res.Rotation) > 1e-12 {
		t.Errorf("Expected persisted rotation %v, got %v", res.Rotation, rotation)
	}

	// Polling the finished plan again returns the same result
	w = pollSpin(env, wheelID, plan.ID)
	testutil.AssertStatus(t, w, http.StatusOK)
	var repeat models.ProgressResponse
	testutil.AssertJSON(t, w, &repeat)
	if repeat.Result == nil || repeat.Result.Index != res.Index {
		t.Errorf("Expected repeated result %d, got %+v", res.Index, repeat.Result)
	}

	// The next spin starts from the persisted rotation
	next := startSpin(t, env, wheelID, nil)
	if !next.Started || math.Abs(next.Plan.StartRotation-res.Rotation) > 1e-12 {
		t.Errorf("Expected next spin to start at %v, got %+v", res.Rotation, next.Plan)
	}
}

func TestSpin_EqualModeLandsOnSelectedOption(t *testing.T) {
	env := newTestEnv(t)

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg, "A", "B", "C", "D")
	settings, _ := env.store.LoadSettings(t.Context(), wheelID)
	settings.EqualSizeSlices = true
	if err := env.store.SaveSettings(t.Context(), wheelID, settings); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	resp := startSpin(t, env, wheelID, nil)
	if resp.Plan == nil || resp.Plan.Mode != models.ModeEqual {
		t.Fatalf("Expected equal-mode plan, got %+v", resp.Plan)
	}

	env.clock.Advance(10 * time.Second)
	w := pollSpin(env, wheelID, resp.Plan.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var final models.ProgressResponse
	testutil.AssertJSON(t, w, &final)

	// A draw of 0.5 over four equal weights picks index 1.
	if final.Result == nil || final.Result.Index != 1 {
		t.Errorf("Expected the weighted pick (index 1), got %+v", final.Result)
	}
}

func TestSpin_ReducedMotion(t *testing.T) {
	env := newTestEnv(t)

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg, "A", "B")

	resp := startSpin(t, env, wheelID, models.SpinRequest{ReducedMotion: true})
	if !resp.Started || resp.Plan.DurationMS != 0 || !resp.Plan.ReducedMotion {
		t.Fatalf("Expected instant reduced-motion plan, got %+v", resp.Plan)
	}

	w := pollSpin(env, wheelID, resp.Plan.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var final models.ProgressResponse
	testutil.AssertJSON(t, w, &final)
	if !final.Done || final.Result == nil {
		t.Fatalf("Expected result on first poll, got %+v", final)
	}
	if final.Result.Effects.Confetti {
		t.Error("Confetti should be suppressed for reduced motion")
	}
	if final.Result.Effects.SoundURL == "" {
		t.Error("Sound should still play for reduced motion")
	}
}

func TestSpin_EffectsFollowSettings(t *testing.T) {
	env := newTestEnv(t)

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg, "A", "B")
	settings, _ := env.store.LoadSettings(t.Context(), wheelID)
	settings.SoundEnabled = false
	settings.ConfettiEnabled = false
	settings.SpinDuration = 1
	env.store.SaveSettings(t.Context(), wheelID, settings)

	resp := startSpin(t, env, wheelID, nil)
	if resp.Plan.DurationMS != 1000 {
		t.Errorf("Expected 1000ms, got %d", resp.Plan.DurationMS)
	}

	env.clock.Advance(time.Second)
	w := pollSpin(env, wheelID, resp.Plan.ID)

	var final models.ProgressResponse
	testutil.AssertJSON(t, w, &final)
	if final.Result == nil {
		t.Fatal("Expected result")
	}
	if final.Result.Effects.SoundURL != "" || final.Result.Effects.Confetti {
		t.Errorf("Expected no effects, got %+v", final.Result.Effects)
	}
}

func TestSpin_EmptyWheelIsNoop(t *testing.T) {
	env := newTestEnv(t)

	wheelID, adminKey := testutil.CreateTestWheel(t, env.db, env.cfg, "A")

	req := testutil.MakeRequest("DELETE", "/wheels/"+wheelID+"/options", nil, testutil.AdminHeaders(adminKey))
	w := serve(env.options().ClearOptions, req, "id", wheelID)
	testutil.AssertStatus(t, w, http.StatusOK)

	resp := startSpin(t, env, wheelID, nil)
	if resp.Started || resp.Plan != nil {
		t.Errorf("Expected started=false on empty wheel, got %+v", resp)
	}
	if env.tracker.Spinning(wheelID) {
		t.Error("Empty wheel should not be spinning")
	}
}

func TestSpin_StaleAndCancelled(t *testing.T) {
	env := newTestEnv(t)

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg, "A", "B")

	w := pollSpin(env, wheelID, "unknown")
	testutil.AssertStatus(t, w, http.StatusConflict)

	resp := startSpin(t, env, wheelID, nil)
	env.clock.Advance(time.Second)

	req := testutil.MakeRequest("DELETE", "/wheels/"+wheelID+"/spin", nil, nil)
	w = serve(env.spins().CancelSpin, req, "id", wheelID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var cancel models.CancelResponse
	testutil.AssertJSON(t, w, &cancel)
	if !cancel.Cancelled {
		t.Fatal("Expected cancelled=true")
	}
	if cancel.Rotation < 0 || cancel.Rotation >= wheel.TwoPi {
		t.Errorf("Rotation %v not normalized", cancel.Rotation)
	}

	rotation, _ := env.store.LoadRotation(t.Context(), wheelID)
	if math.Abs(rotation-cancel.Rotation) > 1e-12 {
		t.Errorf("Expected persisted rotation %v, got %v", cancel.Rotation, rotation)
	}

	w = pollSpin(env, wheelID, resp.Plan.ID)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Cancelling an idle wheel reports the resting rotation
	req = testutil.MakeRequest("DELETE", "/wheels/"+wheelID+"/spin", nil, nil)
	w = serve(env.spins().CancelSpin, req, "id", wheelID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var idle models.CancelResponse
	testutil.AssertJSON(t, w, &idle)
	if idle.Cancelled || math.Abs(idle.Rotation-cancel.Rotation) > 1e-12 {
		t.Errorf("Expected no-op cancel at %v, got %+v", cancel.Rotation, idle)
	}
}

func TestSpin_Errors(t *testing.T) {
	env := newTestEnv(t)
	handler := env.spins()

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg, "A")

	tests := []struct {
		name           string
		handler        http.HandlerFunc
		req            *http.Request
		id             string
		expectedStatus int
	}{
		{"start unknown wheel", handler.StartSpin, testutil.MakeRequest("POST", "/wheels/missing/spin", nil, nil), "missing", http.StatusNotFound},
		{"poll unknown wheel", handler.PollSpin, testutil.MakeRequest("GET", "/wheels/missing/spin?plan=x", nil, nil), "missing", http.StatusNotFound},
		{"poll without plan", handler.PollSpin, testutil.MakeRequest("GET", "/wheels/"+wheelID+"/spin", nil, nil), wheelID, http.StatusBadRequest},
		{"cancel unknown wheel", handler.CancelSpin, testutil.MakeRequest("DELETE", "/wheels/missing/spin", nil, nil), "missing", http.StatusNotFound},
		{"invalid body", handler.StartSpin, testutil.MakeRequest("POST", "/wheels/"+wheelID+"/spin", "not an object", nil), wheelID, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.handler, tt.req, "id", tt.id)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	if env.tracker.Spinning("missing") {
		t.Error("Unknown wheel should not be tracked")
	}
}
