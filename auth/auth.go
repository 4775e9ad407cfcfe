// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidAdminToken = errors.New("invalid admin token")

// HashClientIP creates a one-way hash of a client IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashClientIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}

// KioskHash generates a unique per-request hash for trusted shared-IP
// clients (school kiosks), so they never collide with each other or with
// hashed clients. The "kiosk-" prefix cannot appear in HashClientIP output.
func KioskHash() string {
	return "kiosk-" + uuid.NewString()
}

// ValidateAdminToken checks the provided token against the configured one
// in constant time
func ValidateAdminToken(token, expected string) error {
	if expected == "" || !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidAdminToken
	}
	return nil
}
