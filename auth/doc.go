// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides client hashing and admin token validation.

# Client Hashing

HashClientIP produces a salted, truncated HMAC-SHA256 of the client
address. The raw address is never stored:

	hash := auth.HashClientIP(ip, cfg.IPHashSalt)

The same address always hashes to the same value, which is what the
one-submission-per-client unique constraint keys on.

# Kiosk Bypass

Trusted shared-IP locations (school kiosks, library terminals) would
otherwise collide on a single hash. KioskHash returns a unique per-request
value instead:

	hash := auth.KioskHash() // "kiosk-<uuid>"

The prefix cannot collide with HashClientIP output, which is plain hex.

# Admin Token

ValidateAdminToken compares the presented token against the configured
secret in constant time:

	if err := auth.ValidateAdminToken(token, cfg.AdminToken); err != nil {
		// 401
	}
*/
package auth
