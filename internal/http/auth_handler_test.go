package http

import (
	"encoding/json"
	"testing"
)

func TestVerifyOTPRequestBodyShape(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"token key", `{"email":"user@example.com","token":"123456"}`, "123456"},
		{"code key", `{"email":"user@example.com","code":"654321"}`, "654321"},
		{"token wins over code", `{"email":"user@example.com","token":"111111","code":"222222"}`, "111111"},
		{"neither key", `{"email":"user@example.com"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req verifyOTPRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if got := req.otp(); got != tt.want {
				t.Errorf("otp() = %q, expected %q", got, tt.want)
			}
		})
	}
}
