package usecase

import (
	"context"
	"io"

	"github.com/khaledhussein957/my-websote-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged". Changing email or phone re-validates uniqueness.
type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Title *string `json:"title"`
	Bio   *string `json:"bio"`
}

// ProfileUsecase defines the account-profile operations behind the token gate.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *UpdateProfileInput) (*entity.Account, error)

	// UpdateAvatar uploads a new avatar image, persists its URL on the
	// account, and deletes the previous image best-effort.
	UpdateAvatar(ctx context.Context, accountID uuid.UUID, filename, contentType string, content io.Reader) (string, error)
}
