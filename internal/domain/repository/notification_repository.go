package repository

import (
	"context"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	"github.com/khaledhussein957/my-websote-sub000/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when no notification matches the lookup.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository is the contract for the account audit records.
type NotificationRepository interface {
	// Create appends a new notification for an account.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByAccount retrieves an account's notifications, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips the is_read flag on a notification owned by the given
	// account. Marking an already-read notification is a no-op success.
	MarkRead(ctx context.Context, id, accountID uuid.UUID) error
}
