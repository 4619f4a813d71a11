package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/khaledhussein957/my-websote-sub000/internal/delivery/context"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/repository"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the account's notifications, newest first.
func (srv *notificationService) List(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := srv.notificationRepo.FindByAccount(ctx, accountID, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to list notifications", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flips the is_read flag on one of the account's notifications.
// Ownership is part of the lookup, so another account's notification behaves
// as missing.
func (srv *notificationService) MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, notificationID, accountID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		srv.log(ctx).Error("Failed to mark notification as read", slog.Any("notificationID", notificationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to mark notification as read")
	}

	srv.log(ctx).Debug("Notification marked as read", slog.Any("notificationID", notificationID))

	return nil
}
