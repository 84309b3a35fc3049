package domain

import (
	"fmt"
	"net/mail"
	"time"
)

// SessionLifetime is how long a fabricated session descriptor is advertised
// as valid. It mirrors the platform's default session length; nothing in
// this layer enforces it.
const SessionLifetime = 7 * 24 * time.Hour

// Identity is a user record owned by the external platform's user
// management service. Field names follow the platform's wire format so
// responses pass through unchanged.
type Identity struct {
	ID                string                 `json:"$id"`
	CreatedAt         string                 `json:"$createdAt,omitempty"`
	UpdatedAt         string                 `json:"$updatedAt,omitempty"`
	Email             string                 `json:"email"`
	Name              string                 `json:"name"`
	Phone             string                 `json:"phone,omitempty"`
	Status            bool                   `json:"status"`
	EmailVerification bool                   `json:"emailVerification"`
	PhoneVerification bool                   `json:"phoneVerification"`
	Registration      string                 `json:"registration,omitempty"`
	Labels            []string               `json:"labels,omitempty"`
	Prefs             map[string]interface{} `json:"prefs,omitempty"`
}

// IdentityList is the platform's paged user listing
type IdentityList struct {
	Total int64      `json:"total"`
	Users []Identity `json:"users"`
}

// SessionDescriptor is a locally fabricated, non-cryptographic record
// summarizing a login event. It is informational only: the authenticating
// credential remains the bearer token issued by the platform, which is
// opaque to this layer.
type SessionDescriptor struct {
	UserID      string    `json:"userId"`
	Provider    string    `json:"provider"`
	ProviderUID string    `json:"providerUid"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Current     bool      `json:"current"`
}

// NewSessionDescriptor fabricates a session descriptor for an identity
func NewSessionDescriptor(userID, email string) (*SessionDescriptor, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	return &SessionDescriptor{
		UserID:      userID,
		Provider:    "email",
		ProviderUID: email,
		ExpiresAt:   time.Now().Add(SessionLifetime),
		Current:     true,
	}, nil
}

// IsExpired returns true if the descriptor's advertised lifetime has passed
func (s *SessionDescriptor) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// RegisterRequest is the registration input
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
}

// Validate performs basic domain validation beyond struct tags
func (r *RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}

// LoginRequest is the login input
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult pairs an identity with its fabricated session descriptor
type AuthResult struct {
	User    *Identity          `json:"user"`
	Session *SessionDescriptor `json:"session"`
}
