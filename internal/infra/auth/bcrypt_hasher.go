// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/khaledhussein957/my-websote-sub000/config"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
)

// Strength policy: beyond the usual minimum length, every character class
// must appear at least twice. This is deliberately strict and must not be
// relaxed to one-of-each.
const (
	minPasswordLength = 8
	minClassCount     = 2
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the candidate password against the policy.
// The length check runs first, then the class counts in fixed order:
// uppercase, lowercase, digit, symbol. The first failing rule's message is
// returned.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters long")
	}

	var upper, lower, digit, symbol int
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r):
			digit++
		case !unicode.IsLetter(r):
			symbol++
		}
	}

	switch {
	case upper < minClassCount:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least 2 uppercase letters")
	case lower < minClassCount:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least 2 lowercase letters")
	case digit < minClassCount:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least 2 digits")
	case symbol < minClassCount:
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least 2 symbol characters")
	}

	return nil
}
