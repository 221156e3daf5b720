// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

type OptionHandler struct {
	store   *store.Store
	tracker *SpinTracker
	cfg     cliparse.Config
}

func NewOptionHandler(st *store.Store, tracker *SpinTracker, cfg cliparse.Config) *OptionHandler {
	return &OptionHandler{store: st, tracker: tracker, cfg: cfg}
}

// editOptions loads the option list, applies edit and persists the whole
// list. Edits are refused while the wheel is spinning.
func (h *OptionHandler) editOptions(ctx context.Context, wheelID string, edit func(*wheel.State) error) ([]wheel.Option, error) {
	var opts []wheel.Option
	err := h.tracker.with(wheelID, func(tw *trackedWheel) error {
		if tw.session.Spinning() {
			return errSpinning
		}
		if _, err := h.store.GetWheel(ctx, wheelID); err != nil {
			return err
		}

		current, err := h.store.LoadOptions(ctx, wheelID)
		if err != nil {
			return err
		}
		state := wheel.State{Options: current}
		if err := edit(&state); err != nil {
			return err
		}
		if err := h.store.SaveOptions(ctx, wheelID, state.Options); err != nil {
			return err
		}
		opts = state.Options
		return nil
	})
	return opts, err
}

func optionIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid option index")
		return 0, false
	}
	return index, true
}

// AddOption handles POST /wheels/{id}/options
func (h *OptionHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.AddOptionRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	opts, err := h.editOptions(r.Context(), wheelID, func(s *wheel.State) error {
		_, err := s.Add(req.Label, h.store.Config())
		return err
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to add option")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, optionsResponse(opts))
}

// UpdateOption handles PUT /wheels/{id}/options/{index}
func (h *OptionHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	index, ok := optionIndex(w, r)
	if !ok {
		return
	}

	var req models.UpdateOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	opts, err := h.editOptions(r.Context(), wheelID, func(s *wheel.State) error {
		if req.Label != nil {
			if err := s.Rename(index, *req.Label); err != nil {
				return err
			}
		}
		if len(req.Weight) > 0 && string(req.Weight) != "null" {
			if err := s.SetWeight(index, wheel.WeightFromJSON(req.Weight)); err != nil {
				return err
			}
		}
		if req.Color != nil {
			if err := s.SetColor(index, *req.Color); err != nil {
				return err
			}
		}
		if index < 0 || index >= len(s.Options) {
			return wheel.ErrIndexOutOfRange
		}
		return nil
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to update option")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, optionsResponse(opts))
}

// RemoveOption handles DELETE /wheels/{id}/options/{index}
func (h *OptionHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	index, ok := optionIndex(w, r)
	if !ok {
		return
	}

	opts, err := h.editOptions(r.Context(), wheelID, func(s *wheel.State) error {
		return s.Remove(index)
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to remove option")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, optionsResponse(opts))
}

// MoveOption handles POST /wheels/{id}/options/move
// Out-of-range or same-position moves leave the list unchanged.
func (h *OptionHandler) MoveOption(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.MoveOptionRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	opts, err := h.editOptions(r.Context(), wheelID, func(s *wheel.State) error {
		s.Move(*req.From, *req.To)
		return nil
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to move option")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, optionsResponse(opts))
}

// ClearOptions handles DELETE /wheels/{id}/options
func (h *OptionHandler) ClearOptions(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	opts, err := h.editOptions(r.Context(), wheelID, func(s *wheel.State) error {
		s.Clear()
		return nil
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to clear options")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, optionsResponse(opts))
}
