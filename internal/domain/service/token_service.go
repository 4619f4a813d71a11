package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the custom claims embedded in a session token.
// The payload carries the account identifier only.
type SessionClaims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
//
// Tokens are bearer-only: whoever presents a structurally valid, unexpired,
// correctly signed token is treated as that account. There is no revocation
// list; expiry is the only termination mechanism.
type TokenService interface {
	// GenerateToken creates a signed session token for the account with a
	// fixed TTL from issuance.
	GenerateToken(accountID uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and extracts the account
	// id. Every failure mode (bad signature, malformed payload, expired)
	// returns the same uniform unauthorized error.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// GetSessionDuration returns the configured token lifetime.
	GetSessionDuration() time.Duration
}
