// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestHashClientIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"standard", "203.0.113.7", "secret-salt"},
		{"ipv6", "2001:db8::1", "secret-salt"},
		{"empty salt", "203.0.113.7", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashClientIP(tt.ip, tt.salt)

			// 8 bytes hex encoded
			if len(hash) != 16 {
				t.Errorf("HashClientIP() length = %d, want 16", len(hash))
			}

			// Should be deterministic
			if hash != HashClientIP(tt.ip, tt.salt) {
				t.Error("HashClientIP() is not deterministic")
			}

			// Different IPs should produce different hashes
			if hash == HashClientIP(tt.ip+"1", tt.salt) {
				t.Error("HashClientIP() produced same hash for different IPs")
			}

			// Different salts should produce different hashes
			if hash == HashClientIP(tt.ip, tt.salt+"x") {
				t.Error("HashClientIP() produced same hash for different salts")
			}

			// Verify it's valid hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashClientIP() contains invalid hex char: %c", c)
				}
			}
		})
	}
}

func TestKioskHash(t *testing.T) {
	h1 := KioskHash()
	h2 := KioskHash()

	if h1 == h2 {
		t.Error("KioskHash() must be unique per call")
	}
	if !strings.HasPrefix(h1, "kiosk-") {
		t.Errorf("KioskHash() = %q, want kiosk- prefix", h1)
	}

	// The prefix guarantees no collision with HashClientIP output (hex only)
	if strings.HasPrefix(HashClientIP("203.0.113.7", "salt"), "kiosk-") {
		t.Error("HashClientIP() output must never look like a kiosk hash")
	}
}

func TestValidateAdminToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
		wantErr  bool
	}{
		{"valid token", "secret-token", "secret-token", false},
		{"wrong token", "wrong", "secret-token", true},
		{"empty token", "", "secret-token", true},
		{"empty configured token always fails", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminToken(tt.token, tt.expected)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidAdminToken {
				t.Errorf("ValidateAdminToken() error = %v, want %v", err, ErrInvalidAdminToken)
			}
		})
	}
}
