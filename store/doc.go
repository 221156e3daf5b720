// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists wheels and their state.

Wheel rows live in the wheel table; everything else is JSON text in the kv
table under the wheel id as namespace:

	spinnerOptions   [{"label":"Pizza","weight":1,"color":"#FF6B6B"}, ...]
	spinnerSettings  {"soundEnabled":true,"confettiEnabled":true,"spinDuration":3,"equalSizeSlices":false}
	spinnerRotation  4.71238898038469

Queries are built with squirrel so the same code runs on SQLite (? placeholders)
and PostgreSQL ($1 placeholders).

Loading is forgiving: a missing or malformed option list falls back to the
seed list, malformed settings to the defaults, and legacy bare-string option
lists are migrated. An empty list that was saved on purpose stays empty.
*/
package store
