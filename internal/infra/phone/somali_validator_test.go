package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomaliValidator_CheckMobile_ValidNumbers(t *testing.T) {
	v := NewSomaliValidator()

	testCases := []struct {
		number   string
		operator string
	}{
		{"0615551234", "Hormuud"},
		{"0645551234", "Hormuud"},
		{"+252615551234", "Hormuud"},
		{"252625551234", "Somtel"},
		{"0655551234", "Somtel"},
		{"635551234", "Telesom"},
		{"0665551234", "NationLink"},
		{"0695551234", "NationLink"},
		{"0685551234", "SomNet"},
		{"0905551234", "Golis"},
		{"061 555 1234", "Hormuud"},
		{"061-555-1234", "Hormuud"},
	}

	for _, tc := range testCases {
		result := v.CheckMobile(tc.number)
		require.True(t, result.Valid, "expected %s to be valid: %s", tc.number, result.Message)
		require.NotNil(t, result.Operator)
		assert.Equal(t, tc.operator, result.Operator.Name, "number %s", tc.number)
		assert.Equal(t, "valid mobile number", result.Message)
	}
}

func TestSomaliValidator_CheckMobile_InvalidFormat(t *testing.T) {
	v := NewSomaliValidator()

	for _, number := range []string{
		"",
		"abc",
		"12345",
		"06155512",      // too short
		"061555123456",  // too long
		"+1615551234",   // wrong country code length
		"0615x551234",   // stray letter
	} {
		result := v.CheckMobile(number)
		assert.False(t, result.Valid, "number %q", number)
		assert.Equal(t, "invalid mobile number format", result.Message, "number %q", number)
		assert.Nil(t, result.Operator)
	}
}

func TestSomaliValidator_CheckMobile_UnknownOperator(t *testing.T) {
	v := NewSomaliValidator()

	// 70 is a well-formed national prefix no operator owns.
	result := v.CheckMobile("0705551234")
	assert.False(t, result.Valid)
	assert.Equal(t, "no matching mobile operator for this number", result.Message)
	assert.Nil(t, result.Operator)
}

func TestSomaliValidator_CheckMobile_OperatorDetailsUnavailable(t *testing.T) {
	v := NewSomaliValidator()

	// The 71 prefix is assigned to Amtel, which has no details entry.
	result := v.CheckMobile("0715551234")
	assert.False(t, result.Valid)
	assert.Equal(t, "operator recognized but operator details are unavailable", result.Message)
	assert.Nil(t, result.Operator)
}

func TestSomaliValidator_IsLoginIdentifier(t *testing.T) {
	v := NewSomaliValidator()

	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"0615551234",
		"+252615551234",
		"252615551234",
	}
	for _, identifier := range valid {
		assert.True(t, v.IsLoginIdentifier(identifier), "identifier %q", identifier)
	}

	invalid := []string{
		"",
		"   ",
		"not an email",
		"user@example",  // no TLD
		"@example.com",  // no local part
		"12345",         // too short for a phone
		"061 555 1234",  // spaces are not accepted as login keys
	}
	for _, identifier := range invalid {
		assert.False(t, v.IsLoginIdentifier(identifier), "identifier %q", identifier)
	}
}
