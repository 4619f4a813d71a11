package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccount_HasActiveReset(t *testing.T) {
	now := time.Now()
	code := "123456"
	future := now.Add(5 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name      string
		code      *string
		expiresAt *time.Time
		want      bool
	}{
		{"no reset pending", nil, nil, false},
		{"active code", &code, &future, true},
		{"expired code", &code, &past, false},
		{"expiry without code", nil, &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{ResetCode: tt.code, ResetCodeExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, account.HasActiveReset(now))
		})
	}
}
