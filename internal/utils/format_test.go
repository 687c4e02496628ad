package utils

import (
	"testing"
	"time"
)

func TestFormatBoolean(t *testing.T) {
	tests := []struct {
		name     string
		value    bool
		labels   []string
		expected string
	}{
		{"default true", true, nil, "Yes"},
		{"default false", false, nil, "No"},
		{"custom true", true, []string{"Passed", "Failed"}, "Passed"},
		{"custom false", false, []string{"Passed", "Failed"}, "Failed"},
		{"single label ignored", true, []string{"Only"}, "Yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBoolean(tt.value, tt.labels...); got != tt.expected {
				t.Errorf("FormatBoolean(%v, %v) = %q, expected %q", tt.value, tt.labels, got, tt.expected)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 7, 4, 13, 45, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-07-04" {
		t.Errorf("FormatDate = %q, expected 2026-07-04", got)
	}
}

func TestFormatTestResult(t *testing.T) {
	passed := true
	failed := false

	tests := []struct {
		name     string
		result   *bool
		expected string
	}{
		{"nil is not tested", nil, "Not Tested"},
		{"true is passed", &passed, "Passed"},
		{"false is failed", &failed, "Failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTestResult(tt.result); got != tt.expected {
				t.Errorf("FormatTestResult = %q, expected %q", got, tt.expected)
			}
		})
	}
}
