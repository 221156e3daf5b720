// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-spin/auth"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/transfer"
	"github.com/danielhkuo/quickly-spin/wheel"
	"github.com/dustin/go-humanize"
)

var errSpinning = errors.New("wheel is spinning")

// requireAdmin writes 401 and reports false unless the request carries the
// wheel's admin key.
func requireAdmin(w http.ResponseWriter, r *http.Request, wheelID, salt string) bool {
	adminKey := r.Header.Get(auth.AdminKeyHeader)
	if err := auth.ValidateAdminKey(wheelID, adminKey, salt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// writeError maps domain errors to statuses. Anything unrecognized is logged
// and reported as a 500 with fallback as the message.
func writeError(w http.ResponseWriter, err error, wheelID, fallback string) {
	switch {
	case errors.Is(err, store.ErrWheelNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Wheel not found")
	case errors.Is(err, errSpinning):
		middleware.ErrorResponse(w, http.StatusConflict, "Wheel is spinning")
	case errors.Is(err, wheel.ErrStalePlan):
		middleware.ErrorResponse(w, http.StatusConflict, "Spin plan is no longer active")
	case errors.Is(err, wheel.ErrIndexOutOfRange):
		middleware.ErrorResponse(w, http.StatusNotFound, "Option not found")
	case errors.Is(err, wheel.ErrEmptyLabel):
		middleware.ErrorResponse(w, http.StatusBadRequest, "label is required")
	case errors.Is(err, wheel.ErrInvalidColor):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, transfer.ErrMalformed):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Error importing file: "+err.Error())
	default:
		slog.Error(fallback, "wheel_id", wheelID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}

// totalDisplay renders a total weight with two decimals and digit grouping.
func totalDisplay(total float64) string {
	return humanize.FormatFloat("#,###.##", total)
}

func optionViews(opts []wheel.Option) []models.OptionView {
	views := make([]models.OptionView, len(opts))
	for i, o := range opts {
		views[i] = optionView(i, o)
	}
	return views
}

func optionView(index int, o wheel.Option) models.OptionView {
	return models.OptionView{Index: index, Label: o.Label, Weight: o.Weight, Color: o.Color}
}

func optionsResponse(opts []wheel.Option) models.OptionsResponse {
	state := wheel.State{Options: opts}
	total := state.TotalWeight()
	return models.OptionsResponse{
		Options:            optionViews(opts),
		TotalWeight:        total,
		TotalWeightDisplay: totalDisplay(total),
	}
}

func settingsView(s wheel.Settings) models.SettingsView {
	return models.SettingsView{
		SoundEnabled:    s.SoundEnabled,
		ConfettiEnabled: s.ConfettiEnabled,
		SpinDuration:    s.SpinDuration,
		EqualSizeSlices: s.EqualSizeSlices,
	}
}

func sliceViews(state wheel.State) []models.SliceView {
	slices := wheel.Layout(state)
	views := make([]models.SliceView, len(slices))
	for i, s := range slices {
		views[i] = models.SliceView{
			Index:        s.Index,
			Label:        s.Label,
			DisplayLabel: s.DisplayLabel,
			Color:        s.Color,
			Weight:       s.Weight,
			Share:        s.Share,
			StartAngle:   s.StartAngle,
			EndAngle:     s.EndAngle,
		}
	}
	return views
}

func planView(p wheel.Plan) *models.PlanView {
	return &models.PlanView{
		ID:            p.ID,
		StartRotation: p.StartRotation,
		TotalDelta:    p.TotalDelta,
		DurationMS:    p.Duration.Milliseconds(),
		StartTime:     p.StartTime,
		Mode:          p.Mode.String(),
		Turns:         p.Turns,
		ReducedMotion: p.ReducedMotion,
	}
}
