// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/testutil"
)

func TestGetSettings(t *testing.T) {
	env := newTestEnv(t)
	handler := env.settings()

	wheelID, _ := testutil.CreateTestWheel(t, env.db, env.cfg)

	req := testutil.MakeRequest("GET", "/wheels/"+wheelID+"/settings", nil, nil)
	w := serve(handler.GetSettings, req, "id", wheelID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SettingsView
	testutil.AssertJSON(t, w, &resp)

	want := models.SettingsView{SoundEnabled: true, ConfettiEnabled: true, SpinDuration: 3}
	if resp != want {
		t.Errorf("Expected %+v, got %+v", want, resp)
	}

	req = testutil.MakeRequest("GET", "/wheels/missing/settings", nil, nil)
	w = serve(handler.GetSettings, req, "id", "missing")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestUpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	handler := env.settings()

	wheelID, adminKey := testutil.CreateTestWheel(t, env.db, env.cfg)

	tests := []struct {
		name           string
		adminKey       string
		body           any
		expectedStatus int
		want           models.SettingsView
	}{
		{
			name:           "invalid admin key",
			adminKey:       "wrong",
			body:           map[string]any{"sound_enabled": false},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "duration too long",
			adminKey:       adminKey,
			body:           map[string]any{"spin_duration": 11},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duration too short",
			adminKey:       adminKey,
			body:           map[string]any{"spin_duration": 0},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "partial update",
			adminKey:       adminKey,
			body:           map[string]any{"spin_duration": 5, "equal_size_slices": true},
			expectedStatus: http.StatusOK,
			want:           models.SettingsView{SoundEnabled: true, ConfettiEnabled: true, SpinDuration: 5, EqualSizeSlices: true},
		},
		{
			name:           "toggle effects keeps the rest",
			adminKey:       adminKey,
			body:           map[string]any{"sound_enabled": false, "confetti_enabled": false},
			expectedStatus: http.StatusOK,
			want:           models.SettingsView{SpinDuration: 5, EqualSizeSlices: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/wheels/"+wheelID+"/settings", tt.body, testutil.AdminHeaders(tt.adminKey))
			w := serve(handler.UpdateSettings, req, "id", wheelID)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp models.SettingsView
			testutil.AssertJSON(t, w, &resp)
			if resp != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, resp)
			}
		})
	}

	settings, err := env.store.LoadSettings(t.Context(), wheelID)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if settings.SpinDuration != 5 || !settings.EqualSizeSlices || settings.SoundEnabled {
		t.Errorf("Settings not persisted: %+v", settings)
	}
}

func TestUpdateSettings_RejectedWhileSpinning(t *testing.T) {
	env := newTestEnv(t)

	wheelID, adminKey := testutil.CreateTestWheel(t, env.db, env.cfg, "A", "B")

	req := testutil.MakeRequest("POST", "/wheels/"+wheelID+"/spin", nil, nil)
	serve(env.spins().StartSpin, req, "id", wheelID)

	req = testutil.MakeRequest("PUT", "/wheels/"+wheelID+"/settings", map[string]any{"equal_size_slices": true}, testutil.AdminHeaders(adminKey))
	w := serve(env.settings().UpdateSettings, req, "id", wheelID)
	testutil.AssertStatus(t, w, http.StatusConflict)
}
