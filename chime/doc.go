// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chime synthesizes the winner sound: an 800 Hz sine lasting half a
// second, decaying exponentially from gain 0.3 to 0.01. WAV encodes it once
// and caches the bytes for serving.
package chime
