package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	phoneValidator service.PhoneValidator
	mediaService   service.MediaService
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	PhoneValidator service.PhoneValidator
	MediaService   service.MediaService
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		phoneValidator: params.PhoneValidator,
		mediaService:   params.MediaService,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account behind the session.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	srv.log(ctx).Debug("Getting account profile", slog.Any("accountID", accountID))

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateProfile applies the provided profile fields. Email and phone changes
// re-run the same validation as registration and are re-checked for
// uniqueness by the store.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating account profile", slog.Any("accountID", accountID))

	var updated *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name must not be empty"), "profile update rejected")
			}
			account.Name = name
		}

		if input.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*input.Email))
			if email == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email must not be empty"), "profile update rejected")
			}
			account.Email = email
		}

		if input.Phone != nil {
			phone := strings.TrimSpace(*input.Phone)
			phoneCheck := srv.phoneValidator.CheckMobile(phone)
			if !phoneCheck.Valid {
				return errors.Wrap(domainerrors.ErrInvalidPhone.WithDetails(phoneCheck.Message), "profile update rejected")
			}
			account.Phone = phone
		}

		if input.Title != nil {
			account.Title = strings.TrimSpace(*input.Title)
		}

		if input.Bio != nil {
			account.Bio = strings.TrimSpace(*input.Bio)
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update account profile", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// UpdateAvatar uploads a new avatar image, stores its URL on the account and
// removes the previous image best-effort.
func (srv *profileService) UpdateAvatar(ctx context.Context, accountID uuid.UUID, filename, contentType string, content io.Reader) (string, error) {
	srv.log(ctx).Info("Updating account avatar", slog.Any("accountID", accountID))

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return "", errors.Wrap(err, "failed to find account")
	}

	url, err := srv.mediaService.Upload(ctx, filename, contentType, content)
	if err != nil {
		srv.log(ctx).Error("Failed to upload avatar", slog.Any("accountID", accountID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrMediaUploadFailed, "failed to upload avatar")
	}

	previousURL := account.AvatarURL
	account.AvatarURL = url

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		// Persisting failed, so remove the orphaned upload.
		if cleanupErr := srv.mediaService.Delete(ctx, url); cleanupErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned avatar upload", slog.String("url", url), slog.Any("error", cleanupErr))
		}

		return "", errors.Wrap(err, "failed to store avatar url")
	}

	if previousURL != "" {
		if err := srv.mediaService.Delete(ctx, previousURL); err != nil {
			srv.log(ctx).Warn("Failed to delete previous avatar", slog.String("url", previousURL), slog.Any("error", err))
		}
	}

	return url, nil
}
