// Package middleware contains HTTP middleware for the Echo server.
package middleware

import (
	"strings"

	"github.com/khaledhussein957/my-websote-sub000/internal/delivery/http/response"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyAccountID is the echo.Context key the verified account id is stored under.
const ContextKeyAccountID = "accountID"

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "token"

// AuthMiddleware validates the session token carried by a request.
//
// The token is read from the session cookie first, then from a Bearer
// Authorization header. Every failure mode (missing, malformed, bad
// signature, expired) yields the same 401 response so callers cannot tell
// which check failed.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(ContextKeyAccountID, claims.AccountID)

		return next(c)
	}
}

// AccountID extracts the verified account id placed by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyAccountID).(uuid.UUID)

	return id, ok
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
}
