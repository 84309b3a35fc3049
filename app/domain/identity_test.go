package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		email   string
		wantErr bool
	}{
		{
			name:    "valid descriptor",
			userID:  "user-123",
			email:   "a@b.com",
			wantErr: false,
		},
		{
			name:    "missing user id",
			userID:  "",
			email:   "a@b.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := NewSessionDescriptor(tt.userID, tt.email)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userID, session.UserID)
			assert.Equal(t, "email", session.Provider)
			assert.Equal(t, tt.email, session.ProviderUID)
			assert.True(t, session.Current)
			assert.False(t, session.IsExpired())
			// Advertised lifetime is seven days
			assert.WithinDuration(t, time.Now().Add(SessionLifetime), session.ExpiresAt, time.Minute)
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{Email: "a@b.com", Password: "password123", Name: "A"}
	assert.NoError(t, valid.Validate())

	invalid := RegisterRequest{Email: "not an email", Password: "password123", Name: "A"}
	assert.Error(t, invalid.Validate())
}
