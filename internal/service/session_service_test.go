package service

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)

	token, err := svc.IssueToken("1", "aigul@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "1" {
		t.Errorf("user id = %q, want 1", claims.UserID)
	}
	if claims.Email != "aigul@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.ID == "" {
		t.Error("token should carry a unique id")
	}
}

func TestValidateTokenRejectsBadSignature(t *testing.T) {
	issuer := NewSessionService("secret-one", time.Hour)
	verifier := NewSessionService("secret-two", time.Hour)

	token, err := issuer.IssueToken("1", "aigul@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewSessionService("test-secret", -time.Minute)

	token, err := svc.IssueToken("1", "aigul@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewSessionService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
	}
}
