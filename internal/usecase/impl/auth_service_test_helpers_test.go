package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/khaledhussein957/my-websote-sub000/config"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
	mockRepo "github.com/khaledhussein957/my-websote-sub000/internal/mocks/repository"
	mockSvc "github.com/khaledhussein957/my-websote-sub000/internal/mocks/service"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   4,
			SessionTTL:   time.Hour,
			ResetCodeTTL: 5 * time.Minute,
		},
	}
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	accountRepo      *mockRepo.MockAccountRepository
	notificationRepo *mockRepo.MockNotificationRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	phoneValidator   *mockSvc.MockPhoneValidator
	mailer           *mockSvc.MockMailer
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	phoneValidator := mockSvc.NewMockPhoneValidator(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		AccountRepo:      accountRepo,
		NotificationRepo: notificationRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		PhoneValidator:   phoneValidator,
		Mailer:           mailer,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          svc,
		txManager:        txManager,
		accountRepo:      accountRepo,
		notificationRepo: notificationRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		phoneValidator:   phoneValidator,
		mailer:           mailer,
	}
}

func validPhoneResult() service.PhoneCheckResult {
	return service.PhoneCheckResult{
		Valid: true,
		Operator: &service.PhoneOperator{
			Name:   "Hormuud",
			Prefix: "61",
		},
		Message: "valid mobile number",
	}
}

func invalidPhoneResult(message string) service.PhoneCheckResult {
	return service.PhoneCheckResult{
		Valid:   false,
		Message: message,
	}
}
