package auth

import (
	"testing"

	"github.com/khaledhussein957/my-websote-sub000/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "AAbb11!!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "AAbb11!!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("BBcc22??", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"AAbb11!!",
		"SStrong@@Pass9944",
		"AAbb22$$",
		"XYxy4747#+",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Aa1!", "at least 8 characters"},
		{"aabb11!!", "at least 2 uppercase"},
		{"Aabb11!!", "at least 2 uppercase"},
		{"AABB11!!", "at least 2 lowercase"},
		{"AABb11!!", "at least 2 lowercase"},
		{"AAbbcc!!", "at least 2 digits"},
		{"AAbb11cc", "at least 2 symbol"},
		{"AAbb11c!", "at least 2 symbol"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr, "Error message should contain: %s", tc.expectedErr)
	}
}

// The rules report in a fixed order: length, then uppercase, lowercase,
// digits, symbols. A password failing several rules reports the first.
func TestBcryptHasher_ValidatePasswordStrength_ReportsFirstFailure(t *testing.T) {
	hasher := newTestHasher()

	err := hasher.ValidatePasswordStrength("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")

	// Long enough but missing every class: uppercase reported first.
	err = hasher.ValidatePasswordStrength("........")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 uppercase")

	err = hasher.ValidatePasswordStrength("AA......")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 lowercase")

	err = hasher.ValidatePasswordStrength("AAbb....")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 digits")
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, 10, hasher.cost)
}
