package service

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", "2026-03-15T08:30:00Z", time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC), false},
		{"date only", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"datetime without zone", "2026-03-15T08:30:00", time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC), false},
		{"padded", "  2026-03-15  ", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "15/03/2026", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDate(%q) succeeded, expected an error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) failed: %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseDate(%q) = %v, expected %v", tt.raw, got, tt.want)
			}
		})
	}
}
