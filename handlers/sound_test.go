// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/danielhkuo/quickly-spin/chime"
	"github.com/danielhkuo/quickly-spin/testutil"
)

func TestWinnerSound(t *testing.T) {
	handler := NewSoundHandler()

	req := testutil.MakeRequest("GET", WinnerSoundPath, nil, nil)
	w := serve(handler.WinnerSound, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if got := w.Header().Get("Content-Type"); got != chime.ContentType {
		t.Errorf("Expected %s, got %s", chime.ContentType, got)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("RIFF")) {
		t.Error("Expected a RIFF/WAV body")
	}
}

func TestWinnerSound_FailureIsSilent(t *testing.T) {
	handler := &SoundHandler{render: func() ([]byte, error) {
		return nil, errors.New("no audio")
	}}

	req := testutil.MakeRequest("GET", WinnerSoundPath, nil, nil)
	w := serve(handler.WinnerSound, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %d bytes", w.Body.Len())
	}
}
