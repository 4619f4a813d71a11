package usecase

import (
	"context"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the account audit-record operations.
type NotificationUsecase interface {
	// List returns the account's notifications, newest first.
	List(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips the is_read flag on one of the account's notifications.
	MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error
}
