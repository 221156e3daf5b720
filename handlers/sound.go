// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-spin/chime"
)

type SoundHandler struct {
	render func() ([]byte, error)
}

func NewSoundHandler() *SoundHandler {
	return &SoundHandler{render: chime.WAV}
}

// WinnerSound handles GET /sounds/winner.wav
// A synthesis failure is logged and answered with an empty 204.
func (h *SoundHandler) WinnerSound(w http.ResponseWriter, r *http.Request) {
	data, err := h.render()
	if err != nil {
		slog.Error("failed to render winner sound", "error", err)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", chime.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
