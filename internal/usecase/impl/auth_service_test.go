package impl

import (
	"context"
	"strconv"
	"testing"

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

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Account",
		Email:    "Test@Example.com",
		Phone:    "0615551234",
		Password: "AAbb11!!",
	}

	fx.phoneValidator.EXPECT().CheckMobile("0615551234").Return(validPhoneResult())
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmailOrPhone(ctx, "test@example.com", "0615551234").
				Return(nil, repository.ErrAccountNotFound)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().GenerateToken(mock.AnythingOfType("uuid.UUID")).Return("session_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session_token", output.Token)
	assert.Equal(t, "test@example.com", output.Account.Email)
	assert.Equal(t, "0615551234", output.Account.Phone)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:  "Test Account",
		Email: "test@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.RegisterInput{
		Name:     "Test Account",
		Email:    "test@example.com",
		Phone:    "12345",
		Password: "AAbb11!!",
	}

	fx.phoneValidator.EXPECT().CheckMobile("12345").Return(invalidPhoneResult("invalid mobile number format"))

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPhone))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "invalid mobile number format", appErr.Details())
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	input := &usecase.RegisterInput{
		Name:     "Test Account",
		Email:    "test@example.com",
		Phone:    "0615551234",
		Password: "weak",
	}

	fx.phoneValidator.EXPECT().CheckMobile("0615551234").Return(validPhoneResult())
	fx.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters long"))

	_, err := fx.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Register_DuplicateAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Account",
		Email:    "test@example.com",
		Phone:    "0615551234",
		Password: "AAbb11!!",
	}

	fx.phoneValidator.EXPECT().CheckMobile("0615551234").Return(validPhoneResult())
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().
				FindByEmailOrPhone(ctx, "test@example.com", "0615551234").
				Return(&entity.Account{ID: uuid.New(), Email: "test@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "test@example.com",
		Phone:        "0615551234",
		PasswordHash: "hashed_password",
	}

	fx.phoneValidator.EXPECT().IsLoginIdentifier("0615551234").Return(true)
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "0615551234").Return(account, nil)
	fx.hasher.EXPECT().Check("AAbb11!!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(accountID).Return("session_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "0615551234",
		Password:   "AAbb11!!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session_token", output.Token)
	assert.Equal(t, accountID, output.Account.ID)
}

func TestAuthService_Login_EmailIdentifierIsLowercased(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed_password"}

	fx.phoneValidator.EXPECT().IsLoginIdentifier("Test@Example.com").Return(true)
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "test@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("AAbb11!!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateToken(account.ID).Return("session_token", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "Test@Example.com",
		Password:   "AAbb11!!",
	})

	require.NoError(t, err)
}

func TestAuthService_Login_UnknownAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.phoneValidator.EXPECT().IsLoginIdentifier("ghost@example.com").Return(true)
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "ghost@example.com",
		Password:   "AAbb11!!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed_password"}

	fx.phoneValidator.EXPECT().IsLoginIdentifier("test@example.com").Return(true)
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "test@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Identifier: "test@example.com",
		Password:   "wrong",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown account and wrong password must be indistinguishable to a caller.
func TestAuthService_Login_UniformFailureMessage(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "known@example.com", PasswordHash: "hashed_password"}

	fx.phoneValidator.EXPECT().IsLoginIdentifier(mock.AnythingOfType("string")).Return(true)
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByIdentifier(ctx, "known@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost@example.com", Password: "wrong"})
	_, wrongPassErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "known@example.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongPassErr, &wrongApp))
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
}

func TestAuthService_Login_RejectsMalformedIdentifier(t *testing.T) {
	fx := createTestAuthService(t)

	fx.phoneValidator.EXPECT().IsLoginIdentifier("not an identifier").Return(false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Identifier: "not an identifier",
		Password:   "AAbb11!!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_CheckAuth(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "test@example.com"}

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	found, err := fx.service.CheckAuth(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, found.ID)
}

func TestAuthService_CheckAuth_AccountGone(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.CheckAuth(ctx, accountID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestGenerateResetCode(t *testing.T) {
	for range 100 {
		code, err := generateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
