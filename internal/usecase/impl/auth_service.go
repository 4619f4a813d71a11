// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/khaledhussein957/my-websote-sub000/config"
	deliverycontext "github.com/khaledhussein957/my-websote-sub000/internal/delivery/context"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/repository"
	"github.com/khaledhussein957/my-websote-sub000/internal/domain/service"
	"github.com/khaledhussein957/my-websote-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resetCodeMin  = 100000
	resetCodeSpan = 900000
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	notificationRepo repository.NotificationRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	phoneValidator   service.PhoneValidator
	mailer           service.Mailer
	resetCodeTTL     time.Duration
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	NotificationRepo repository.NotificationRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	PhoneValidator   service.PhoneValidator
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetCodeTTL := 5 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetCodeTTL > 0 {
		resetCodeTTL = params.Config.Auth.ResetCodeTTL
	}

	return &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		notificationRepo: params.NotificationRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		phoneValidator:   params.PhoneValidator,
		mailer:           params.Mailer,
		resetCodeTTL:     resetCodeTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after validating phone, password strength
// and uniqueness, then issues a session token for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)

	if name == "" || email == "" || phone == "" || input.Password == "" {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("name, email, phone and password are required"),
			"registration rejected",
		)
	}

	phoneCheck := srv.phoneValidator.CheckMobile(phone)
	if !phoneCheck.Valid {
		srv.log(ctx).Warn("Phone validation failed during registration", slog.String("email", email), slog.String("reason", phoneCheck.Message))

		return nil, errors.Wrap(domainerrors.ErrInvalidPhone.WithDetails(phoneCheck.Message), "registration rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "registration rejected")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	newAccount := &entity.Account{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Pre-check for a friendly conflict response. The unique indexes on
		// email and phone remain the final arbiter for concurrent inserts.
		_, findErr := accountRepo.FindByEmailOrPhone(ctx, email, phone)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "registration rejected")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check for existing account")
		}

		return accountRepo.Create(ctx, newAccount)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.GenerateToken(newAccount.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token after registration", slog.Any("accountID", newAccount.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", newAccount.ID))

	return &usecase.AuthOutput{Account: newAccount, Token: token}, nil
}

// Login authenticates by email or phone plus password and issues a session
// token. Unknown identifier and wrong password return the same error so the
// endpoint never reveals whether an account exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)

	if identifier == "" || input.Password == "" {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("identifier and password are required"),
			"login rejected",
		)
	}

	if !srv.phoneValidator.IsLoginIdentifier(identifier) {
		srv.log(ctx).Warn("Login identifier is neither email nor phone")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if strings.Contains(identifier, "@") {
		identifier = strings.ToLower(identifier)
	}

	account, err := srv.accountRepo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed, no matching account")

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by identifier")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token during login", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Account logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Account: account, Token: token}, nil
}

// CheckAuth loads the account behind a verified session token.
func (srv *authService) CheckAuth(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "session account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// ForgotPassword issues a fresh 6-digit reset code for the account owning
// the email, overwriting any earlier code, and mails it best-effort.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email is required"), "forgot password rejected")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Password reset requested for unknown email")

			return errors.Wrap(domainerrors.ErrAccountNotFound, "forgot password rejected")
		}

		return errors.Wrap(err, "failed to find account by email")
	}

	if account.HasActiveReset(time.Now()) {
		srv.log(ctx).Info("Replacing outstanding reset code", slog.Any("accountID", account.ID))
	}

	code, err := generateResetCode()
	if err != nil {
		srv.log(ctx).Error("Failed to generate reset code", slog.Any("error", err))

		return errors.Wrap(err, "failed to generate reset code")
	}
	expiresAt := time.Now().Add(srv.resetCodeTTL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().SetResetCode(ctx, account.ID, code, expiresAt); err != nil {
			return errors.Wrap(err, "failed to store reset code")
		}

		notification := &entity.Notification{
			AccountID: account.ID,
			Event:     entity.EventPasswordResetRequested,
			Message:   "A password reset code was requested for your account.",
		}

		return repoFactory.NotificationRepo().Create(ctx, notification)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute forgot password transaction", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute forgot password transaction")
	}

	srv.sendMail(ctx, account,
		"Your password reset code",
		fmt.Sprintf("<p>Hello %s,</p><p>Your password reset code is <strong>%s</strong>. It expires in %d minutes.</p>",
			account.Name, code, int(srv.resetCodeTTL.Minutes())))

	srv.log(ctx).Info("Password reset code issued", slog.Any("accountID", account.ID))

	return nil
}

// ResetPassword consumes a reset code: it validates the new password, swaps
// the hash and clears the code in one transaction, then mails a confirmation
// best-effort.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if input.Code == "" || input.Password == "" || input.ConfirmPassword == "" {
		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("code, password and confirm password are required"),
			"password reset rejected",
		)
	}

	if input.Password != input.ConfirmPassword {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("passwords do not match"), "password reset rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during reset", slog.Any("error", err))

		return errors.Wrap(err, "password reset rejected")
	}

	// Expiry is enforced by the lookup itself: an expired code simply never
	// matches, so wrong and expired codes are indistinguishable here.
	account, err := srv.accountRepo.FindByResetCode(ctx, input.Code, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Password reset with invalid or expired code")

			return errors.Wrap(domainerrors.ErrResetCodeInvalid, "password reset rejected")
		}

		return errors.Wrap(err, "failed to find account by reset code")
	}

	if srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password reset reused the current password", slog.Any("accountID", account.ID))

		return errors.Wrap(domainerrors.ErrPasswordReuse, "password reset rejected")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "password reset failed")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().UpdatePasswordAndClearReset(ctx, account.ID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		notification := &entity.Notification{
			AccountID: account.ID,
			Event:     entity.EventPasswordChanged,
			Message:   "Your account password was changed.",
		}

		return repoFactory.NotificationRepo().Create(ctx, notification)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.sendMail(ctx, account,
		"Your password was changed",
		fmt.Sprintf("<p>Hello %s,</p><p>Your password was just changed. If this was not you, request a new reset code immediately.</p>",
			account.Name))

	srv.log(ctx).Info("Password reset completed", slog.Any("accountID", account.ID))

	return nil
}

// sendMail delivers a credential-lifecycle email best-effort. A failed or
// disabled send is logged and never fails the calling operation.
func (srv *authService) sendMail(ctx context.Context, account *entity.Account, subject, body string) {
	if !srv.mailer.IsEnabled() {
		srv.log(ctx).Debug("Outbound mail disabled, skipping send", slog.Any("accountID", account.ID))

		return
	}

	if err := srv.mailer.Send(account.Email, subject, body); err != nil {
		srv.log(ctx).Warn("Failed to send credential email", slog.Any("accountID", account.ID), slog.Any("error", err))
	}
}

// generateResetCode draws a uniformly random 6-digit code (100000-999999)
// from crypto/rand.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(resetCodeSpan))
	if err != nil {
		return "", errors.Wrap(err, "failed to read random source")
	}

	return strconv.FormatInt(resetCodeMin+n.Int64(), 10), nil
}
