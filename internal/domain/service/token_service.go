// Package service defines the interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verification error kinds. The identity-resolving middleware recovers all of
// them locally (the request proceeds as anonymous); they surface to callers
// only through subsequent policy or ownership failures.
var (
	// ErrTokenMalformed indicates the raw token could not be parsed at all.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSignatureInvalid indicates the HMAC check failed, e.g. a token
	// signed with a different key.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired indicates the token parsed and verified but its expiry
	// has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the verified content of a bearer token. Subject is the
// account email the token was issued for.
type Claims struct {
	Subject string
	jwt.RegisteredClaims
}

// TokenService creates and verifies signed, stateless bearer tokens.
// Tokens are self-contained; no revocation list is consulted, so a token
// stays valid until its natural expiry.
type TokenService interface {
	// Issue produces a signed token binding the subject with issued-at = now
	// and expiry = now + the configured validity window.
	Issue(subject string) (string, error)

	// Verify validates the signature and expiry of a raw token and returns
	// its claims. Failures are one of ErrTokenMalformed,
	// ErrTokenSignatureInvalid or ErrTokenExpired.
	Verify(raw string) (*Claims, error)
}
