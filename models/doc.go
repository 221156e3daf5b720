// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON, validated with go-playground/validator tags:

  - CreateWheelRequest: name
  - AddOptionRequest: label
  - UpdateOptionRequest: label, weight, color (all optional)
  - MoveOptionRequest: from, to
  - UpdateSettingsRequest: sound_enabled, confetti_enabled, spin_duration (1-10), equal_size_slices
  - SpinRequest: reduced_motion

# Response Types

Types for JSON responses:

  - CreateWheelResponse: wheel_id, admin_key
  - WheelResponse: options, settings, rotation, slices, spinning
  - OptionsResponse: options after an edit, with total weight
  - SpinResponse: started, plan
  - ProgressResponse: rotation, progress, done, result
  - CancelResponse: cancelled, rotation
  - ImportResponse: message, option_count, settings
  - ErrorResponse: error, message

# Angles

All angles are radians. Slices carry the rotation already applied, so a
client draws slice i from start_angle to end_angle with angle 0 pointing right
and angles growing clockwise. The pointer sits at 3π/2.

# Constants

  - ModeWeighted, ModeEqual: selection mode names
*/
package models
