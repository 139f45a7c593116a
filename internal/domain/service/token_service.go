package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the verified content of an access token: the subject it was
// issued to plus the registered issued-at and expiry timestamps.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token construction from the use cases.
type TokenService interface {
	// Generate creates a signed, self-contained token for the given subject,
	// valid for ttl from now. No server-side state is kept.
	Generate(userID uuid.UUID, ttl time.Duration) (string, error)

	// Validate checks the token's signature and expiry against the server clock
	// and recovers the subject. An expired but otherwise valid token and a
	// malformed or forged token are reported as distinct domain errors, so
	// callers can tell "re-login" from "reject".
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured lifetime for issued access tokens.
	AccessTokenTTL() time.Duration
}
