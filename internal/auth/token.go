package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued session token remains valid.
const DefaultTokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong algorithm, expired, or malformed.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenService issues and verifies signed session tokens. The signing
// secret is injected at construction so tests can use distinct secrets.
// Tokens are stateless; the service keeps no record of issued tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithTTL overrides the default 24-hour token lifetime.
func WithTTL(ttl time.Duration) TokenOption {
	return func(ts *TokenService) {
		ts.ttl = ttl
	}
}

// WithClock overrides the time source (useful for expiry tests).
func WithClock(now func() time.Time) TokenOption {
	return func(ts *TokenService) {
		ts.now = now
	}
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret []byte, opts ...TokenOption) *TokenService {
	ts := &TokenService{
		secret: secret,
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Issue constructs a signed HS256 token for the administrator.
// The token carries the admin ID as subject, issued-at, and an expiry of
// ttl from now.
func (ts *TokenService) Issue(adminID int64) (string, error) {
	now := ts.now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(adminID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates a token's signature and expiry and returns the admin ID
// it was issued for. Every failure mode degrades to ErrInvalidToken;
// verification never panics or propagates parser internals.
func (ts *TokenService) Verify(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			// Reject any algorithm other than the one we sign with,
			// including "none".
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return ts.secret, nil
		},
		jwt.WithTimeFunc(ts.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return adminID, nil
}
