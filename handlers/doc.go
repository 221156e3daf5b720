// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Spin API.

# Handler Types

Each handler is a struct with store, spin tracker and config dependencies:

  - WheelHandler: Wheel lifecycle (create, view, delete)
  - OptionHandler: Option list edits (add, update, remove, move, clear)
  - SettingsHandler: Spin duration, slice mode and effect toggles
  - SpinHandler: Spin start, progress polling and cancel
  - TransferHandler: Configuration export and import
  - SoundHandler: The synthesized winner chime

Handlers are created via constructor functions sharing one SpinTracker:

	tracker := handlers.NewSpinTracker()
	wheelHandler := handlers.NewWheelHandler(st, tracker, cfg)

# Editing

Every edit loads the full option list, applies the change and writes the
whole list back. Edits, settings changes and imports answer 409 while the
wheel is spinning.

	POST   /wheels/{id}/options         → AddOption
	PUT    /wheels/{id}/options/{index} → UpdateOption (label, weight, color)
	DELETE /wheels/{id}/options/{index} → RemoveOption
	POST   /wheels/{id}/options/move    → MoveOption
	DELETE /wheels/{id}/options         → ClearOptions

Admin operations require the X-Admin-Key header.

# Spinning

A spin is planned up front and advanced by polling:

	POST   /wheels/{id}/spin         → StartSpin (returns the plan)
	GET    /wheels/{id}/spin?plan=ID → PollSpin (result once done)
	DELETE /wheels/{id}/spin         → CancelSpin

Starting a spin on an empty or already spinning wheel answers
{"started": false}. Polling a cancelled or superseded plan answers 409.
*/
package handlers
