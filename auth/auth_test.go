// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name   string
		wheelID string
		salt   string
	}{
		{"standard", "wheel123", "secret-salt"},
		{"empty wheel id", "", "salt"},
		{"empty salt", "wheel456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.wheelID, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateAdminKey(tt.wheelID, tt.salt)
			if key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.wheelID != "" && tt.salt != "" {
				differentKey := GenerateAdminKey(tt.wheelID+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateAdminKey() produced same key for different wheel IDs")
				}
			}

			// Should be URL-safe (no padding)
			if strings.Contains(key, "=") {
				t.Error("GenerateAdminKey() contains padding characters")
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	wheelID := "test-wheel-123"
	salt := "test-salt"
	validKey := GenerateAdminKey(wheelID, salt)

	tests := []struct {
		name     string
		wheelID   string
		adminKey string
		salt     string
		wantErr  bool
	}{
		{"valid key", wheelID, validKey, salt, false},
		{"wrong key", wheelID, "wrong-key", salt, true},
		{"wrong wheel id", "different-wheel", validKey, salt, true},
		{"wrong salt", wheelID, validKey, "different-salt", true},
		{"empty key", wheelID, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.wheelID, tt.adminKey, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidAdminKey {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, ErrInvalidAdminKey)
			}
		})
	}
}

// Benchmark tests
func BenchmarkGenerateID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateID(16)
	}
}

func BenchmarkGenerateAdminKey(b *testing.B) {
	wheelID := "test-wheel-123"
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateAdminKey(wheelID, salt)
	}
}
