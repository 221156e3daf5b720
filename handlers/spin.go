// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

// WinnerSoundPath serves the winner chime.
const WinnerSoundPath = "/sounds/winner.wav"

type SpinHandler struct {
	store   *store.Store
	tracker *SpinTracker
	cfg     cliparse.Config
}

func NewSpinHandler(st *store.Store, tracker *SpinTracker, cfg cliparse.Config) *SpinHandler {
	return &SpinHandler{store: st, tracker: tracker, cfg: cfg}
}

// StartSpin handles POST /wheels/{id}/spin
// Spinning an empty wheel, or one already in flight, answers started=false.
func (h *SpinHandler) StartSpin(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	var req models.SpinRequest
	if r.ContentLength != 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	var resp models.SpinResponse
	err := h.tracker.with(wheelID, func(tw *trackedWheel) error {
		if _, err := h.store.GetWheel(r.Context(), wheelID); err != nil {
			return err
		}
		if tw.session.Spinning() {
			return nil
		}

		state, settings, err := h.store.LoadState(r.Context(), wheelID)
		if err != nil {
			return err
		}
		tw.session.State = state

		plan, ok := tw.session.Start(h.store.Config(), wheel.SpinOptions{
			Duration:      time.Duration(settings.SpinDuration) * time.Second,
			ReducedMotion: req.ReducedMotion,
			Now:           h.tracker.now(),
		}, h.tracker.rng)
		if !ok {
			return nil
		}

		tw.settings = settings
		resp = models.SpinResponse{Started: true, Plan: planView(plan)}
		return nil
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to start spin")
		return
	}

	if resp.Started {
		slog.Info("spin started", "wheel_id", wheelID, "plan_id", resp.Plan.ID, "mode", resp.Plan.Mode)
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// PollSpin handles GET /wheels/{id}/spin?plan=
// The final poll carries the winner and persists the resting rotation.
func (h *SpinHandler) PollSpin(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	planID := r.URL.Query().Get("plan")
	if planID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "plan is required")
		return
	}

	var resp models.ProgressResponse
	err := h.tracker.with(wheelID, func(tw *trackedWheel) error {
		frame, res, err := tw.session.Advance(planID, h.tracker.now())
		if errors.Is(err, wheel.ErrStalePlan) {
			if _, lookupErr := h.store.GetWheel(r.Context(), wheelID); lookupErr != nil {
				return lookupErr
			}
		}
		if err != nil {
			return err
		}

		resp = models.ProgressResponse{
			PlanID:   frame.PlanID,
			Rotation: frame.Rotation,
			Progress: frame.Progress,
			Done:     frame.Done,
		}
		if res == nil {
			return nil
		}

		if tw.saved != res.PlanID {
			if err := h.store.SaveRotation(r.Context(), wheelID, res.Rotation); err != nil {
				return err
			}
			tw.saved = res.PlanID
			slog.Info("spin finished", "wheel_id", wheelID, "plan_id", res.PlanID, "winner", res.Option.Label)
		}
		resp.Result = resultView(*res, tw.settings)
		return nil
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to advance spin")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CancelSpin handles DELETE /wheels/{id}/spin
// The wheel stays where the animation had reached.
func (h *SpinHandler) CancelSpin(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	var resp models.CancelResponse
	err := h.tracker.with(wheelID, func(tw *trackedWheel) error {
		plan, ok := tw.session.Cancel(h.tracker.now())
		if !ok {
			if _, err := h.store.GetWheel(r.Context(), wheelID); err != nil {
				return err
			}
			rotation, err := h.store.LoadRotation(r.Context(), wheelID)
			if err != nil {
				return err
			}
			resp = models.CancelResponse{Rotation: rotation}
			return nil
		}

		rotation := tw.session.State.Rotation
		if err := h.store.SaveRotation(r.Context(), wheelID, rotation); err != nil {
			return err
		}
		slog.Info("spin cancelled", "wheel_id", wheelID, "plan_id", plan.ID)
		resp = models.CancelResponse{Cancelled: true, Rotation: rotation}
		return nil
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to cancel spin")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Confetti is skipped for reduced-motion spins.
func resultView(res wheel.Result, settings wheel.Settings) *models.ResultView {
	view := &models.ResultView{
		PlanID:   res.PlanID,
		Index:    res.Index,
		Option:   optionView(res.Index, res.Option),
		Rotation: res.Rotation,
		Effects: models.Effects{
			Confetti: settings.ConfettiEnabled && !res.ReducedMotion,
		},
	}
	if settings.SoundEnabled {
		view.Effects.SoundURL = WinnerSoundPath
	}
	return view
}
