// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a registered
// person's identity and credential record. Email and phone are both globally
// unique and either one can be used as a login identifier.
type Account struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`  // Stored trimmed and lowercased; unique.
	Phone              string     `json:"phone"`  // Stored trimmed; unique.
	Title              string     `json:"title"`  // Professional title shown on the portfolio.
	Bio                string     `json:"bio"`    // Short biography shown on the portfolio.
	AvatarURL          string     `json:"avatar_url"`
	PasswordHash       string     `json:"-"` // Never serialized in any response.
	ResetCode          *string    `json:"-"` // 6-digit password reset code; nil when no reset is active.
	ResetCodeExpiresAt *time.Time `json:"-"` // Set and cleared together with ResetCode.
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// HasActiveReset reports whether the account holds a reset code that has not
// yet expired at the given instant. A code past its expiry is treated as if
// it does not exist, even if still stored.
func (a *Account) HasActiveReset(now time.Time) bool {
	return a.ResetCode != nil && a.ResetCodeExpiresAt != nil && a.ResetCodeExpiresAt.After(now)
}
