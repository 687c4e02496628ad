package utils

import "testing"

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"lowercase", "abc123", "ABC123"},
		{"dashes removed", "ABC-123", "ABC123"},
		{"spaces removed", " abc 123 ", "ABC123"},
		{"mixed separators", " ab-c 12-3", "ABC123"},
		{"already canonical", "XYZ789", "XYZ789"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePlate(tt.raw); got != tt.expected {
				t.Errorf("NormalizePlate(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}
