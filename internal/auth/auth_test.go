package auth

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerify(t *testing.T) {
	token, err := Sign("user-1", "secret")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	userID, err := NewVerifier("secret").Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Sign("user-1", "secret")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewVerifier("other").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyUnverifiedMode(t *testing.T) {
	// Without a configured secret, any well-formed token is accepted.
	token, err := Sign("user-1", "whatever")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	userID, err := NewVerifier("").Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	for _, verifier := range []*Verifier{NewVerifier(""), NewVerifier("secret")} {
		if _, err := verifier.Verify("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	}
}

func TestVerifyMissingUserID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).
		SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewVerifier("secret").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
