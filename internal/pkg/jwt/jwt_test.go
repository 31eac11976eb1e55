package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("64f000000000000000000001", "64f000000000000000000002", time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.UserID != "64f000000000000000000001" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.SessionID != "64f000000000000000000002" {
		t.Errorf("SessionID = %q", claims.SessionID)
	}
}

func TestParseExpiredToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("u", "s", -time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	SetSecret("secret-a")
	token, err := Sign("u", "", time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	SetSecret("secret-b")
	if _, err := Parse(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestSignWithoutSessionID(t *testing.T) {
	SetSecret("test-secret")
	token, err := Sign("u", "", time.Hour)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.SessionID != "" {
		t.Errorf("SessionID = %q, want empty", claims.SessionID)
	}
}
