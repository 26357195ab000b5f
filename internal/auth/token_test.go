package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestTokenRoundTrip verifies that a freshly issued token verifies and
// carries the admin ID it was issued for.
func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ts := NewTokenService([]byte("test-secret"))

	token, err := ts.Issue(7)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	adminID, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if adminID != 7 {
		t.Errorf("adminID = %d, want 7", adminID)
	}
}

// TestTokenExpiry verifies that a token past its 24-hour expiry is rejected
// even though its signature is valid.
func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	issuedAt := time.Now()
	clock := issuedAt

	ts := NewTokenService([]byte("test-secret"), WithClock(func() time.Time { return clock }))

	token, err := ts.Issue(1)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Still valid just before expiry
	clock = issuedAt.Add(DefaultTokenTTL - time.Minute)
	if _, err := ts.Verify(token); err != nil {
		t.Fatalf("Verify before expiry failed: %v", err)
	}

	// Rejected after expiry
	clock = issuedAt.Add(DefaultTokenTTL + time.Minute)
	if _, err := ts.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify after expiry = %v, want ErrInvalidToken", err)
	}
}

// TestTokenWrongSecret verifies that a token signed with a different secret
// is rejected.
func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("secret-a"))
	verifier := NewTokenService([]byte("secret-b"))

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with wrong secret = %v, want ErrInvalidToken", err)
	}
}

// TestTokenMalformed verifies that garbage input degrades to ErrInvalidToken
// instead of propagating parser errors.
func TestTokenMalformed(t *testing.T) {
	t.Parallel()

	ts := NewTokenService([]byte("test-secret"))

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9..sig"} {
		if _, err := ts.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) = %v, want ErrInvalidToken", token, err)
		}
	}
}

// TestTokenRejectsUnsignedAlgorithm verifies that tokens using the "none"
// algorithm are rejected.
func TestTokenRejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	ts := NewTokenService([]byte("test-secret"))

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := ts.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(none-alg token) = %v, want ErrInvalidToken", err)
	}
}
