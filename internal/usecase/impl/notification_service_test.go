package impl

import (
	"context"
	"testing"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/repository"
	mockRepo "github.com/khaledhussein957/my-websote-sub000/internal/mocks/repository"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return svc, notificationRepo
}

func TestNotificationService_List(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), AccountID: accountID, Event: entity.EventPasswordChanged},
		{ID: uuid.New(), AccountID: accountID, Event: entity.EventPasswordResetRequested},
	}

	notificationRepo.EXPECT().FindByAccount(ctx, accountID, 10, 0).Return(expected, nil)

	notifications, err := svc.List(ctx, accountID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationService_List_ClampsPaging(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()

	// Zero limit falls back to the default, negative offset to zero.
	notificationRepo.EXPECT().FindByAccount(ctx, accountID, 20, 0).Return(nil, nil)
	_, err := svc.List(ctx, accountID, 0, -5)
	require.NoError(t, err)

	// An oversized limit is capped.
	notificationRepo.EXPECT().FindByAccount(ctx, accountID, 100, 0).Return(nil, nil)
	_, err = svc.List(ctx, accountID, 5000, 0)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().MarkRead(ctx, notificationID, accountID).Return(nil)

	err := svc.MarkRead(ctx, accountID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	accountID := uuid.New()
	notificationID := uuid.New()

	// Another account's notification is reported as missing, not forbidden.
	notificationRepo.EXPECT().MarkRead(ctx, notificationID, accountID).Return(repository.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, accountID, notificationID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}
