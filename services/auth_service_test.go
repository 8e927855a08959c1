package services

import (
	"errors"
	"testing"
)

func TestSignupThenLogin(t *testing.T) {
	svc := NewAuthService("test-secret")

	user, err := svc.Signup("Sarah", "Sarah@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Email != "sarah@example.com" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}

	if _, err := svc.Signup("Again", "sarah@example.com", "hunter22"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if _, err := svc.Login("sarah@example.com", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("sarah@example.com", "hunter22"); err != nil {
		t.Fatalf("login with correct password: %v", err)
	}
}

func TestLoginAutoProvisionsUnknownEmail(t *testing.T) {
	svc := NewAuthService("test-secret")

	user, err := svc.Login("new.visitor@example.com", "whatever1")
	if err != nil {
		t.Fatalf("login should auto-provision, got %v", err)
	}
	if user.Name != "new.visitor" {
		t.Fatalf("name should derive from the email local part, got %q", user.Name)
	}

	// The provisioned password sticks.
	if _, err := svc.Login("new.visitor@example.com", "different"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on second login, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret")

	user, err := svc.Login("sarah@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	session, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if session.Email != "sarah@example.com" || session.Name != "sarah" {
		t.Fatalf("unexpected session: %+v", session)
	}

	if _, err := svc.ParseToken(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token should fail, got %v", err)
	}
	other := NewAuthService("different-secret")
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("token signed with another secret should fail, got %v", err)
	}
}
