// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin keys and ID generation.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(wheelID, salt)
	err := auth.ValidateAdminKey(wheelID, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same wheel ID and salt always produce the same key. This allows validation
without storing the key in the database. Clients send it in the X-Admin-Key
header to edit options, change settings, import or delete a wheel.

# ID Generation

Random hex IDs for wheels:

	id, err := auth.GenerateID(8)  // 16 hex characters
*/
package auth
