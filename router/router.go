// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/handlers"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db, cfg.DatabaseType, cfg.Wheel)
	tracker := handlers.NewSpinTracker()

	// Initialize handlers
	wheelHandler := handlers.NewWheelHandler(st, tracker, cfg)
	optionHandler := handlers.NewOptionHandler(st, tracker, cfg)
	settingsHandler := handlers.NewSettingsHandler(st, tracker, cfg)
	spinHandler := handlers.NewSpinHandler(st, tracker, cfg)
	transferHandler := handlers.NewTransferHandler(st, tracker, cfg)
	soundHandler := handlers.NewSoundHandler()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Wheel lifecycle
	mux.HandleFunc("POST /wheels", middleware.WithLogging(wheelHandler.CreateWheel))
	mux.HandleFunc("GET /wheels/{id}", middleware.WithLogging(wheelHandler.GetWheel))
	mux.HandleFunc("DELETE /wheels/{id}", middleware.WithLogging(wheelHandler.DeleteWheel))

	// Option editing (admin operations)
	mux.HandleFunc("POST /wheels/{id}/options", middleware.WithLogging(optionHandler.AddOption))
	mux.HandleFunc("DELETE /wheels/{id}/options", middleware.WithLogging(optionHandler.ClearOptions))
	mux.HandleFunc("POST /wheels/{id}/options/move", middleware.WithLogging(optionHandler.MoveOption))
	mux.HandleFunc("PUT /wheels/{id}/options/{index}", middleware.WithLogging(optionHandler.UpdateOption))
	mux.HandleFunc("DELETE /wheels/{id}/options/{index}", middleware.WithLogging(optionHandler.RemoveOption))

	// Settings
	mux.HandleFunc("GET /wheels/{id}/settings", middleware.WithLogging(settingsHandler.GetSettings))
	mux.HandleFunc("PUT /wheels/{id}/settings", middleware.WithLogging(settingsHandler.UpdateSettings))

	// Spinning (public)
	mux.HandleFunc("POST /wheels/{id}/spin", middleware.WithLogging(spinHandler.StartSpin))
	mux.HandleFunc("GET /wheels/{id}/spin", middleware.WithLogging(spinHandler.PollSpin))
	mux.HandleFunc("DELETE /wheels/{id}/spin", middleware.WithLogging(spinHandler.CancelSpin))

	// Configuration transfer
	mux.HandleFunc("GET /wheels/{id}/export", middleware.WithLogging(transferHandler.Export))
	mux.HandleFunc("POST /wheels/{id}/import", middleware.WithLogging(transferHandler.Import))

	// Sounds
	mux.HandleFunc("GET "+handlers.WinnerSoundPath, middleware.WithLogging(soundHandler.WinnerSound))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-spin API v1"))
	})

	return mux
}
