// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationEvent identifies the account event a notification records.
type NotificationEvent string

const (
	// EventPasswordResetRequested is recorded when a reset code is issued.
	EventPasswordResetRequested NotificationEvent = "password_reset_requested"

	// EventPasswordChanged is recorded after a successful password reset.
	EventPasswordChanged NotificationEvent = "password_changed"
)

// Notification is an audit-style record of a credential event on an account.
// It belongs to exactly one account and is immutable after creation except
// for the IsRead flag.
type Notification struct {
	ID        uuid.UUID         `json:"id"`
	AccountID uuid.UUID         `json:"account_id"`
	Event     NotificationEvent `json:"event"`
	Message   string            `json:"message"`
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
}
