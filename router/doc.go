// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Spin API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Wheels:

	POST   /wheels      - Create wheel (returns admin_key)
	GET    /wheels/{id} - Options, settings, layout and spin state
	DELETE /wheels/{id} - Delete wheel (admin)

Options (admin, requires X-Admin-Key):

	POST   /wheels/{id}/options         - Add option
	PUT    /wheels/{id}/options/{index} - Change label, weight or color
	DELETE /wheels/{id}/options/{index} - Remove option
	POST   /wheels/{id}/options/move    - Reorder
	DELETE /wheels/{id}/options         - Clear all

Settings:

	GET /wheels/{id}/settings
	PUT /wheels/{id}/settings - Partial update (admin)

Spinning (public):

	POST   /wheels/{id}/spin         - Start
	GET    /wheels/{id}/spin?plan=ID - Progress and result
	DELETE /wheels/{id}/spin         - Cancel

Transfer and sounds:

	GET  /wheels/{id}/export - Download configuration
	POST /wheels/{id}/import - Upload configuration (admin)
	GET  /sounds/winner.wav  - Winner chime

# Handler Initialization

The router builds one store and one spin tracker and shares them:

	st := store.New(db, cfg.DatabaseType, cfg.Wheel)
	tracker := handlers.NewSpinTracker()
	wheelHandler := handlers.NewWheelHandler(st, tracker, cfg)

The returned mux is wrapped by middleware.Stack in main.
*/
package router
