package domain

import "errors"

// Sentinel errors used across layer boundaries. Gateways translate
// platform failures into these so usecases and middleware never inspect
// driver error types directly.
var (
	// ErrInvalidCredential marks a bearer credential the platform rejected
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrProfileNotFound marks a missing profile document. Onboarding reads
	// treat it as "no progress yet", not as a failure.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUserNotFound marks a lookup that matched no platform user
	ErrUserNotFound = errors.New("user not found")
)
