package auth

import (
	"testing"
	"time"

	"github.com/khaledhussein957/my-websote-sub000/config"
	domainerrors "github.com/khaledhussein957/my-websote-sub000/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{SessionTTL: ttl},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.GenerateToken(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Negative TTL falls back to the default, so use an explicit tiny one.
	jwtService, err := NewJWTService(newTestJWTConfig(time.Millisecond))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // exp has second granularity

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestJWTConfig(time.Hour)
	otherCfg.SecretKey.Session = "a_completely_different_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_GetSessionDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(30 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, jwtService.GetSessionDuration())

	// Zero TTL falls back to one hour.
	jwtService, err = NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetSessionDuration())
}
