package models

import (
	"regexp"
	"testing"
)

func TestNewID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{32}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := NewID()
		if !pattern.MatchString(id) {
			t.Fatalf("generated id %q is not 32 lowercase hex characters", id)
		}
		if seen[id] {
			t.Fatalf("generated duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"generated id", NewID(), true},
		{"all zeros", "00000000000000000000000000000000", true},
		{"empty", "", false},
		{"too short", "abc123", false},
		{"uppercase hex", "ABCDEF00000000000000000000000000", false},
		{"dashed uuid", "01234567-89ab-cdef-0123-456789abcdef", false},
		{"non-hex characters", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidID(tt.id); got != tt.want {
				t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
