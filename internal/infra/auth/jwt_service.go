// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/khaledhussein957/my-websote-sub000/config"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
	"github.com/khaledhussein957/my-websote-sub000/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Server-held secret for signing session tokens.
	sessionTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.SessionTTL > 0 {
		ttl = cfg.Auth.SessionTTL
	}

	return &jwtService{
		secret:     cfg.SecretKey.Session,
		sessionTTL: ttl,
	}, nil
}

// GenerateToken creates a signed session token embedding the account id.
func (s *jwtService) GenerateToken(accountID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": accountID.String(),              // Subject (who the token is for)
		"iat": now.Unix(),                      // Issued At
		"exp": now.Add(s.sessionTTL).Unix(),    // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks signature and expiry and extracts the account id.
// Every failure collapses into the same unauthorized error so the caller
// cannot tell which sub-check failed.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
	}

	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
	}

	return &service.SessionClaims{AccountID: accountID}, nil
}

// GetSessionDuration returns the configured duration for session tokens.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}
