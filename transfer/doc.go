// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package transfer reads and writes wheel configuration files of the form
//
//	{
//	  "options": [{"label": "Pizza", "weight": 1, "color": "#FF6B6B"}],
//	  "settings": {"soundEnabled": true, "confettiEnabled": true, "spinDuration": 3, "equalSizeSlices": false},
//	  "exportDate": "2025-01-02T03:04:05.678Z"
//	}
//
// Import also accepts legacy bare-string option lists.
package transfer
