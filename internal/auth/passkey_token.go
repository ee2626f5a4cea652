package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PasskeyTokenTTL is how long a bootstrap token stays valid after a
// completed passkey ceremony.
const PasskeyTokenTTL = 5 * time.Minute

var (
	// ErrTokenMalformed is returned when a token does not parse
	ErrTokenMalformed = errors.New("malformed passkey token")
	// ErrTokenExpired is returned when a token is past its window
	ErrTokenExpired = errors.New("passkey token expired")
	// ErrTokenSignature is returned when the HMAC does not verify
	ErrTokenSignature = errors.New("passkey token signature mismatch")
)

// PasskeyTokenIssuer mints and verifies the short-lived token that
// bridges a completed WebAuthn ceremony into session issuance. The token
// is base64url("slug:unix_ts:hex_sig") where sig = HMAC-SHA256(secret,
// "slug:unix_ts").
type PasskeyTokenIssuer struct {
	secret []byte
}

// NewPasskeyTokenIssuer creates an issuer with the given signing secret
func NewPasskeyTokenIssuer(secret string) *PasskeyTokenIssuer {
	return &PasskeyTokenIssuer{secret: []byte(secret)}
}

// Generate mints a token for the given tenant slug at the current time
func (i *PasskeyTokenIssuer) Generate(slug string) string {
	return i.generateAt(slug, time.Now())
}

func (i *PasskeyTokenIssuer) generateAt(slug string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	payload := slug + ":" + ts
	raw := payload + ":" + i.sign(payload)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Verify checks a token's signature and expiry and returns the slug it
// was minted for.
func (i *PasskeyTokenIssuer) Verify(token string) (string, error) {
	return i.verifyAt(token, time.Now())
}

func (i *PasskeyTokenIssuer) verifyAt(token string, now time.Time) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrTokenMalformed
	}

	// slug may itself contain separators, so split from the right
	parts := strings.Split(string(decoded), ":")
	if len(parts) < 3 {
		return "", ErrTokenMalformed
	}
	sig := parts[len(parts)-1]
	ts := parts[len(parts)-2]
	slug := strings.Join(parts[:len(parts)-2], ":")

	payload := slug + ":" + ts
	if !hmac.Equal([]byte(sig), []byte(i.sign(payload))) {
		return "", ErrTokenSignature
	}

	issued, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", ErrTokenMalformed
	}
	issuedAt := time.Unix(issued, 0)
	if now.Sub(issuedAt) > PasskeyTokenTTL || issuedAt.After(now.Add(time.Minute)) {
		return "", ErrTokenExpired
	}

	return slug, nil
}

func (i *PasskeyTokenIssuer) sign(payload string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(payload))
	return fmt.Sprintf("%x", mac.Sum(nil))
}
