package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/model"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	parser := NewParser("test-secret")

	user := &model.User{
		ID:           uuid.New(),
		Email:        "inspector@example.com",
		IsSuperAdmin: false,
		Roles:        model.RoleList{model.RoleGovernmentEmission, model.RoleAirQuality},
	}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("user id = %s, expected %s", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %s, expected %s", claims.Email, user.Email)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "government_emission" {
		t.Errorf("unexpected roles: %v", claims.Roles)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-one", time.Hour)
	parser := NewParser("secret-two")

	token, err := issuer.Issue(&model.User{ID: uuid.New(), Email: "x@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := parser.Parse(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	parser := NewParser("test-secret")

	token, err := issuer.Issue(&model.User{ID: uuid.New(), Email: "x@example.com"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := parser.Parse(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	parser := NewParser("test-secret")
	if _, err := parser.Parse("not.a.token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if err := CheckPassword("correct horse battery", hash); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := CheckPassword("wrong password!", hash); err != ErrInvalidPassword {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestHashPasswordRejectsShort(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Error("expected an error for a password below the minimum length")
	}
}

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains a non-digit", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("20 draws produced a single code, generator looks stuck")
	}
}
