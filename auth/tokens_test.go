package auth

import (
	"testing"
	"time"

	"tabu/config"
)

func testTokens(expiry time.Duration) *Tokens {
	return NewTokens(&config.Config{
		JWTSecret:   []byte("secreto-de-prueba"),
		TokenExpiry: expiry,
	})
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	tokens := testTokens(time.Hour)

	signed, err := tokens.Issue("64f1a2b3c4d5e6f718293a4b")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	userID, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != "64f1a2b3c4d5e6f718293a4b" {
		t.Errorf("Verify() = %q, want original user id", userID)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	tokens := testTokens(-time.Minute)

	signed, err := tokens.Issue("64f1a2b3c4d5e6f718293a4b")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := tokens.Verify(signed); err == nil {
		t.Error("Verify() accepted an expired token")
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := testTokens(time.Hour)
	verifier := NewTokens(&config.Config{
		JWTSecret:   []byte("otro-secreto"),
		TokenExpiry: time.Hour,
	})

	signed, err := issuer.Issue("64f1a2b3c4d5e6f718293a4b")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Error("Verify() accepted a token signed with another secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := testTokens(time.Hour)

	for _, tokenString := range []string{"", "abc", "a.b.c"} {
		if _, err := tokens.Verify(tokenString); err == nil {
			t.Errorf("Verify(%q) accepted a malformed token", tokenString)
		}
	}
}
