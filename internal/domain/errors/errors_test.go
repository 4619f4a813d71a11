package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khaledhussein957/my-websote-sub000/internal/errors"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("name is required"), "registration rejected")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrInvalidPhone)
}

func TestBaseError_IsMatchesBareSentinel(t *testing.T) {
	err := ErrAccountNotFound.WrapMessage("lookup failed")

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestBaseError_WithDetailsKeepsCodeAndMessage(t *testing.T) {
	detailed := ErrInvalidPhone.WithDetails("invalid mobile number format")

	assert.Equal(t, ErrInvalidPhone.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, ErrInvalidPhone.HTTPCode(), detailed.HTTPCode())
	assert.Equal(t, ErrInvalidPhone.Message(), detailed.Message())
	assert.Equal(t, "invalid mobile number format", detailed.Details())
	assert.Empty(t, ErrInvalidPhone.Details())
}
