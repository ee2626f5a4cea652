package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPasskeyToken_RoundTrip(t *testing.T) {
	issuer := NewPasskeyTokenIssuer("test-secret")

	token := issuer.Generate("big-russ")
	slug, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if slug != "big-russ" {
		t.Errorf("Expected slug big-russ, got %s", slug)
	}
}

func TestPasskeyToken_WithinWindow(t *testing.T) {
	issuer := NewPasskeyTokenIssuer("test-secret")

	issued := time.Now().Add(-4 * time.Minute)
	token := issuer.generateAt("big-russ", issued)

	if _, err := issuer.Verify(token); err != nil {
		t.Errorf("Expected token at 4 minutes to verify, got %v", err)
	}
}

func TestPasskeyToken_Expired(t *testing.T) {
	issuer := NewPasskeyTokenIssuer("test-secret")

	issued := time.Now().Add(-6 * time.Minute)
	token := issuer.generateAt("big-russ", issued)

	if _, err := issuer.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Expected ErrTokenExpired, got %v", err)
	}
}

func TestPasskeyToken_TamperedSignature(t *testing.T) {
	issuer := NewPasskeyTokenIssuer("test-secret")

	token := issuer.Generate("big-russ")
	decoded, _ := base64.RawURLEncoding.DecodeString(token)

	// Flip the last signature character.
	raw := string(decoded)
	var flipped byte = 'f'
	if raw[len(raw)-1] == 'f' {
		flipped = '0'
	}
	tampered := base64.RawURLEncoding.EncodeToString(append([]byte(raw[:len(raw)-1]), flipped))

	if _, err := issuer.Verify(tampered); !errors.Is(err, ErrTokenSignature) {
		t.Errorf("Expected ErrTokenSignature, got %v", err)
	}
}

func TestPasskeyToken_WrongSecret(t *testing.T) {
	token := NewPasskeyTokenIssuer("secret-a").Generate("big-russ")

	if _, err := NewPasskeyTokenIssuer("secret-b").Verify(token); !errors.Is(err, ErrTokenSignature) {
		t.Errorf("Expected ErrTokenSignature, got %v", err)
	}
}

func TestPasskeyToken_Malformed(t *testing.T) {
	issuer := NewPasskeyTokenIssuer("test-secret")

	for _, token := range []string{"", "not-base64!!!", base64.RawURLEncoding.EncodeToString([]byte("just-a-slug"))} {
		if _, err := issuer.Verify(token); err == nil {
			t.Errorf("Expected error for token %q", token)
		}
	}
}

func TestPasskeyToken_SlugWithSeparator(t *testing.T) {
	issuer := NewPasskeyTokenIssuer("test-secret")

	token := issuer.Generate("big:russ")
	slug, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if slug != "big:russ" {
		t.Errorf("Expected slug preserved, got %s", slug)
	}
	if !strings.Contains(slug, ":") {
		t.Error("Expected separator to survive round trip")
	}
}
