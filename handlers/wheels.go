// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-spin/auth"
	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

type WheelHandler struct {
	store   *store.Store
	tracker *SpinTracker
	cfg     cliparse.Config
}

func NewWheelHandler(st *store.Store, tracker *SpinTracker, cfg cliparse.Config) *WheelHandler {
	return &WheelHandler{store: st, tracker: tracker, cfg: cfg}
}

// CreateWheel handles POST /wheels
func (h *WheelHandler) CreateWheel(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWheelRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	wheelID, err := auth.GenerateID(8)
	if err != nil {
		slog.Error("failed to generate wheel ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create wheel")
		return
	}

	if _, err := h.store.CreateWheel(r.Context(), wheelID, req.Name); err != nil {
		slog.Error("failed to insert wheel", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create wheel")
		return
	}

	slog.Info("wheel created", "wheel_id", wheelID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateWheelResponse{
		WheelID:  wheelID,
		AdminKey: auth.GenerateAdminKey(wheelID, h.cfg.AdminKeySalt),
	})
}

// GetWheel handles GET /wheels/{id}
func (h *WheelHandler) GetWheel(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	meta, err := h.store.GetWheel(r.Context(), wheelID)
	if err != nil {
		writeError(w, err, wheelID, "Failed to load wheel")
		return
	}

	state, settings, err := h.store.LoadState(r.Context(), wheelID)
	if err != nil {
		writeError(w, err, wheelID, "Failed to load wheel")
		return
	}

	total := state.TotalWeight()
	resp := models.WheelResponse{
		ID:                 meta.ID,
		Name:               meta.Name,
		CreatedAt:          meta.CreatedAt,
		Options:            optionViews(state.Options),
		Settings:           settingsView(settings),
		Mode:               state.Mode.String(),
		Rotation:           state.Rotation,
		TotalWeight:        total,
		TotalWeightDisplay: totalDisplay(total),
		Slices:             sliceViews(state),
		Spinning:           h.tracker.Spinning(wheelID),
	}
	if len(state.Options) == 0 {
		resp.Placeholder = wheel.Placeholder
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeleteWheel handles DELETE /wheels/{id}
func (h *WheelHandler) DeleteWheel(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	err := h.tracker.with(wheelID, func(tw *trackedWheel) error {
		return h.store.DeleteWheel(r.Context(), wheelID)
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to delete wheel")
		return
	}
	h.tracker.Forget(wheelID)

	slog.Info("wheel deleted", "wheel_id", wheelID)
	w.WriteHeader(http.StatusNoContent)
}
