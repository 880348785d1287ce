package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	username, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "alice" {
		t.Fatalf("subject = %q, want alice", username)
	}
}

func TestTokenService_SubjectOnlyClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	for name := range claims {
		switch name {
		case "sub", "iat", "exp":
		default:
			t.Fatalf("token carries unexpected claim %q", name)
		}
	}
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	svc.ttl = -time.Minute

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewTokenService("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatalf("expected token signed with another secret to fail")
	}
}

func TestTokenService_RejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "alice"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := NewTokenService("secret", time.Hour).Verify(token); err == nil {
		t.Fatalf("expected alg=none token to be rejected")
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != 24*time.Hour {
		t.Fatalf("default ttl = %v, want 24h", svc.ttl)
	}
}
