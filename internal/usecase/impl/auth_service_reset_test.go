package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/repository"
	mockRepo "github.com/khaledhussein957/my-websote-sub000/internal/mocks/repository"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_ForgotPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Name: "Test Account", Email: "test@example.com"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)

	var issuedCode string
	var issuedExpiry time.Time

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockAccountRepo.EXPECT().
				SetResetCode(ctx, accountID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Run(func(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) {
					issuedCode = code
					issuedExpiry = expiresAt
				}).
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, notification *entity.Notification) {
					assert.Equal(t, accountID, notification.AccountID)
					assert.Equal(t, entity.EventPasswordResetRequested, notification.Event)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().IsEnabled().Return(true)
	fx.mailer.EXPECT().
		Send("test@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(to, subject, body string) {
			assert.Contains(t, body, issuedCode)
		}).
		Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "Test@Example.com"})
	require.NoError(t, err)

	// The issued code is a 6-digit number.
	require.Len(t, issuedCode, 6)
	n, err := strconv.Atoi(issuedCode)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	// The expiry is five minutes out.
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), issuedExpiry, 2*time.Second)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ghost@example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAuthService_ForgotPassword_MailFailureTolerated(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Name: "Test Account", Email: "test@example.com"}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockAccountRepo.EXPECT().
				SetResetCode(ctx, account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(nil)
			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().IsEnabled().Return(true)
	fx.mailer.EXPECT().
		Send("test@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp connection refused"))

	// A failed send never fails the operation.
	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "test@example.com"})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Name:         "Test Account",
		Email:        "test@example.com",
		PasswordHash: "old_hash",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("BBcc22??").Return(nil)
	fx.accountRepo.EXPECT().
		FindByResetCode(ctx, "123456", mock.AnythingOfType("time.Time")).
		Return(account, nil)
	fx.hasher.EXPECT().Check("BBcc22??", "old_hash").Return(false)
	fx.hasher.EXPECT().Hash("BBcc22??").Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockAccountRepo.EXPECT().
				UpdatePasswordAndClearReset(ctx, accountID, "new_hash").
				Return(nil)

			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Run(func(ctx context.Context, notification *entity.Notification) {
					assert.Equal(t, entity.EventPasswordChanged, notification.Event)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().IsEnabled().Return(false)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Password:        "BBcc22??",
		ConfirmPassword: "BBcc22??",
		Code:            "123456",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Password: "BBcc22??",
		Code:     "123456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_ResetPassword_ConfirmMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Password:        "BBcc22??",
		ConfirmPassword: "CCdd33!!",
		Code:            "123456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_ResetPassword_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		ValidatePasswordStrength("weak1234").
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must contain at least 2 uppercase letters"))

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{
		Password:        "weak1234",
		ConfirmPassword: "weak1234",
		Code:            "123456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_ResetPassword_InvalidOrExpiredCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("BBcc22??").Return(nil)
	// An expired code never matches the lookup, so wrong and expired codes
	// take the same path.
	fx.accountRepo.EXPECT().
		FindByResetCode(ctx, "000000", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Password:        "BBcc22??",
		ConfirmPassword: "BBcc22??",
		Code:            "000000",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetCodeInvalid))
}

func TestAuthService_ForgotPassword_SecondCodeInvalidatesFirst(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Name:         "Test Account",
		Email:        "test@example.com",
		PasswordHash: "old_hash",
	}

	fx.accountRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(account, nil)
	fx.mailer.EXPECT().IsEnabled().Return(false)

	// The store's SetResetCode is an unconditional overwrite, so only the
	// most recently issued code survives. Track what the store would hold.
	var storedCode string

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockAccountRepo.EXPECT().
				SetResetCode(ctx, accountID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Run(func(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) {
					storedCode = code
				}).
				Return(nil)
			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		}).
		Twice()

	require.NoError(t, fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "test@example.com"}))
	firstCode := storedCode
	require.NoError(t, fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "test@example.com"}))
	secondCode := storedCode

	// Only the stored code matches the lookup.
	fx.hasher.EXPECT().ValidatePasswordStrength("BBcc22??").Return(nil)
	fx.accountRepo.EXPECT().
		FindByResetCode(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		RunAndReturn(func(ctx context.Context, code string, now time.Time) (*entity.Account, error) {
			if code == storedCode {
				return account, nil
			}
			return nil, repository.ErrAccountNotFound
		})

	if firstCode != secondCode {
		err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
			Password:        "BBcc22??",
			ConfirmPassword: "BBcc22??",
			Code:            firstCode,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrResetCodeInvalid))
	}

	fx.hasher.EXPECT().Check("BBcc22??", "old_hash").Return(false)
	fx.hasher.EXPECT().Hash("BBcc22??").Return("new_hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockAccountRepo.EXPECT().
				UpdatePasswordAndClearReset(ctx, accountID, "new_hash").
				Return(nil)
			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Password:        "BBcc22??",
		ConfirmPassword: "BBcc22??",
		Code:            secondCode,
	})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_CodeIsSingleUse(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Name:         "Test Account",
		Email:        "test@example.com",
		PasswordHash: "old_hash",
	}

	// UpdatePasswordAndClearReset drops the code in the same statement that
	// writes the new hash, so a second lookup with the same code misses.
	consumed := false

	fx.hasher.EXPECT().ValidatePasswordStrength("BBcc22??").Return(nil)
	fx.accountRepo.EXPECT().
		FindByResetCode(ctx, "123456", mock.AnythingOfType("time.Time")).
		RunAndReturn(func(ctx context.Context, code string, now time.Time) (*entity.Account, error) {
			if consumed {
				return nil, repository.ErrAccountNotFound
			}
			return account, nil
		})
	fx.hasher.EXPECT().Check("BBcc22??", "old_hash").Return(false)
	fx.hasher.EXPECT().Hash("BBcc22??").Return("new_hash", nil)
	fx.mailer.EXPECT().IsEnabled().Return(false)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().NotificationRepo().Return(mockNotificationRepo)

			mockAccountRepo.EXPECT().
				UpdatePasswordAndClearReset(ctx, accountID, "new_hash").
				Run(func(ctx context.Context, id uuid.UUID, passwordHash string) {
					consumed = true
				}).
				Return(nil)
			mockNotificationRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Notification")).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	input := &usecase.ResetPasswordInput{
		Password:        "BBcc22??",
		ConfirmPassword: "BBcc22??",
		Code:            "123456",
	}

	require.NoError(t, fx.service.ResetPassword(ctx, input))

	err := fx.service.ResetPassword(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrResetCodeInvalid))
}

func TestAuthService_ResetPassword_RejectsCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "test@example.com", PasswordHash: "old_hash"}

	fx.hasher.EXPECT().ValidatePasswordStrength("AAbb11!!").Return(nil)
	fx.accountRepo.EXPECT().
		FindByResetCode(ctx, "123456", mock.AnythingOfType("time.Time")).
		Return(account, nil)
	fx.hasher.EXPECT().Check("AAbb11!!", "old_hash").Return(true)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Password:        "AAbb11!!",
		ConfirmPassword: "AAbb11!!",
		Code:            "123456",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordReuse))
}
