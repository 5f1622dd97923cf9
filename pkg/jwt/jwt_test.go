package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test key: %v", err)
	}
	return key
}

func TestSignAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	svc := NewTestService(newTestKey(t), "setups.test", 15*time.Minute)

	token, err := svc.Sign(Claims{UserID: "user:abc", Subject: "user:abc"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three token segments, got %q", token)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user:abc" {
		t.Errorf("expected UserID 'user:abc', got %q", claims.UserID)
	}
	if claims.Issuer != "setups.test" {
		t.Errorf("expected issuer 'setups.test', got %q", claims.Issuer)
	}
	if claims.ExpiresAt <= time.Now().Unix() {
		t.Error("expected expiry in the future")
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	t.Parallel()
	svc := NewTestService(newTestKey(t), "setups.test", time.Minute)

	token, err := svc.Sign(Claims{
		UserID:    "user:abc",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := svc.Validate(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidate_TamperedSignature(t *testing.T) {
	t.Parallel()
	svc := NewTestService(newTestKey(t), "setups.test", time.Minute)

	token, err := svc.Sign(Claims{UserID: "user:abc"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + base64URLEncode([]byte("forged"))

	if _, err := svc.Validate(tampered); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_WrongIssuer(t *testing.T) {
	t.Parallel()
	key := newTestKey(t)
	signer := NewTestService(key, "someone-else", time.Minute)
	verifier := NewTestService(key, "setups.test", time.Minute)

	token, err := signer.Sign(Claims{UserID: "user:abc"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := verifier.Validate(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_WrongKey(t *testing.T) {
	t.Parallel()
	signer := NewTestService(newTestKey(t), "setups.test", time.Minute)
	verifier := NewTestService(newTestKey(t), "setups.test", time.Minute)

	token, err := signer.Sign(Claims{UserID: "user:abc"})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	if _, err := verifier.Validate(token); err != ErrInvalidSignature {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	t.Parallel()
	svc := NewTestService(newTestKey(t), "setups.test", time.Minute)

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(token); err != ErrInvalidToken {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestNewService_NoKeys(t *testing.T) {
	t.Parallel()
	if _, err := NewService(Config{Issuer: "setups.test"}); err != ErrInvalidKey {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}
