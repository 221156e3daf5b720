// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/transfer"
	"github.com/danielhkuo/quickly-spin/wheel"
	"github.com/dustin/go-humanize"
)

// Largest configuration file accepted by Import
const maxImportSize = 1 << 20

// ImportSuccessMessage is returned after a successful import.
const ImportSuccessMessage = "Configuration imported successfully!"

type TransferHandler struct {
	store   *store.Store
	tracker *SpinTracker
	cfg     cliparse.Config
}

func NewTransferHandler(st *store.Store, tracker *SpinTracker, cfg cliparse.Config) *TransferHandler {
	return &TransferHandler{store: st, tracker: tracker, cfg: cfg}
}

// Export handles GET /wheels/{id}/export
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")

	if _, err := h.store.GetWheel(r.Context(), wheelID); err != nil {
		writeError(w, err, wheelID, "Failed to export wheel")
		return
	}

	opts, err := h.store.LoadOptions(r.Context(), wheelID)
	if err != nil {
		writeError(w, err, wheelID, "Failed to export wheel")
		return
	}
	settings, err := h.store.LoadSettings(r.Context(), wheelID)
	if err != nil {
		writeError(w, err, wheelID, "Failed to export wheel")
		return
	}

	now := h.tracker.now()
	data, err := transfer.Export(opts, settings, now)
	if err != nil {
		writeError(w, err, wheelID, "Failed to export wheel")
		return
	}

	slog.Info("wheel exported", "wheel_id", wheelID, "options", len(opts), "size", humanize.Bytes(uint64(len(data))))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", transfer.Filename(now)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import handles POST /wheels/{id}/import
// The body is a previously exported file. A malformed file changes nothing.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	wheelID := r.PathValue("id")
	if !requireAdmin(w, r, wheelID, h.cfg.AdminKeySalt) {
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportSize))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Error importing file: "+err.Error())
		return
	}

	var (
		opts     []wheel.Option
		settings wheel.Settings
	)
	err = h.tracker.with(wheelID, func(tw *trackedWheel) error {
		if tw.session.Spinning() {
			return errSpinning
		}
		if _, err := h.store.GetWheel(r.Context(), wheelID); err != nil {
			return err
		}

		current, err := h.store.LoadOptions(r.Context(), wheelID)
		if err != nil {
			return err
		}
		currentSettings, err := h.store.LoadSettings(r.Context(), wheelID)
		if err != nil {
			return err
		}

		opts, settings, err = transfer.Import(data, current, currentSettings, h.store.Config())
		if err != nil {
			return err
		}
		return h.store.SaveConfig(r.Context(), wheelID, opts, settings)
	})
	if err != nil {
		writeError(w, err, wheelID, "Failed to import wheel")
		return
	}

	slog.Info("wheel imported", "wheel_id", wheelID, "options", len(opts), "size", humanize.Bytes(uint64(len(data))))

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Message:     ImportSuccessMessage,
		OptionCount: len(opts),
		Settings:    settingsView(settings),
	})
}
