// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

type SettingsHandler struct {
	store   *store.Store
	tracker *SpinTracker
	cfg     cliparse.Config
}

func NewSettingsHandler(st *store.Store, tracker *SpinTracker, cfg cliparse.Config) *SettingsHandler {
	return &SettingsHandler{store: st, tracker: tracker, cfg: cfg}
}

// GetSettings handles GET /wheels/{id}/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	if _, err := h.store.GetWheel(r.Context(), wheelID); err != nil {
		writeError(w, err, wheelID, "Failed to load settings")
		return
	}

	settings, err := h.store.LoadSettings(r.Context(), wheelID)
	if err != nil {
		writeError(w, err, wheelID, "Failed to load settings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, settingsView(settings))
}

// UpdateSettings handles PUT /wheels/{id}/settings
// Only the fields present in the body change.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.UpdateSettingsRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var updated wheel.Settings
	err := h.tracker.with(wheelID, func(tw *trackedWheel) error {
		if tw.session.Spinning() {
			return errSpinning
		}
		if _, err := h.store.GetWheel(r.Context(), wheelID); err != nil {
			return err
		}

		settings, err := h.store.LoadSettings(r.Context(), wheelID)
		if err != nil {
			return err
		}
		if req.SoundEnabled != nil {
			settings.SoundEnabled = *req.SoundEnabled
		}
		if req.ConfettiEnabled != nil {
			settings.ConfettiEnabled = *req.ConfettiEnabled
		}
		if req.SpinDuration != nil {
			settings.SpinDuration = *req.SpinDuration
		}
		if req.EqualSizeSlices != nil {
			settings.EqualSizeSlices = *req.EqualSizeSlices
		}

		updated = settings.Normalize()
		return h.store.SaveSettings(r.Context(), wheelID, updated)
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to update settings")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, settingsView(updated))
}
