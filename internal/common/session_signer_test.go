package common

import (
	"testing"
	"time"
)

func TestSessionSigner_RoundTrip(t *testing.T) {
	signer := NewSessionSigner([]byte("test-secret"), time.Minute)

	sessionID, token, err := signer.NewSession()
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	got, err := signer.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got != sessionID {
		t.Errorf("Expected session %s, got %s", sessionID, got)
	}
}

func TestSessionSigner_RejectsForeignKey(t *testing.T) {
	issuer := NewSessionSigner([]byte("secret-a"), time.Minute)
	verifier := NewSessionSigner([]byte("secret-b"), time.Minute)

	_, token, err := issuer.NewSession()
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, err := verifier.Validate(token); err == nil {
		t.Error("Expected token signed with another key to be rejected")
	}
}

func TestSessionSigner_RejectsExpired(t *testing.T) {
	signer := NewSessionSigner([]byte("test-secret"), -time.Minute)

	_, token, err := signer.NewSession()
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if _, err := signer.Validate(token); err == nil {
		t.Error("Expected expired token to be rejected")
	}
}

func TestSessionSigner_RejectsNonUUIDSession(t *testing.T) {
	signer := NewSessionSigner([]byte("test-secret"), time.Minute)

	token, err := signer.Sign("not-a-uuid")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := signer.Validate(token); err == nil {
		t.Error("Expected malformed session id to be rejected")
	}
}

func TestSessionSigner_RejectsGarbage(t *testing.T) {
	signer := NewSessionSigner([]byte("test-secret"), time.Minute)
	if _, err := signer.Validate("garbage"); err == nil {
		t.Error("Expected garbage token to be rejected")
	}
}
