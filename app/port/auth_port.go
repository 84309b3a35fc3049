package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"beesides-api/app/domain"
)

// AuthUsecase defines authentication business logic interface
type AuthUsecase interface {
	// Register creates a platform identity plus a best-effort profile
	// document, and fabricates a session descriptor
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResult, error)

	// Login resolves an identity by email and fabricates a session
	// descriptor. The password is never verified in this layer; see the
	// usecase for why.
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)

	// CurrentUser fetches the identity whose unique id equals the bearer token
	CurrentUser(ctx context.Context, token string) (*domain.Identity, error)

	// Logout deletes the platform session named by the request; a missing
	// session id is rejected before reaching the platform
	Logout(ctx context.Context, sessionID string) error

	// ResolveIdentity resolves the identity behind a bearer credential via a
	// request-scoped platform handle (used by the authentication gate)
	ResolveIdentity(ctx context.Context, credential string) (*domain.Identity, error)
}

// AccountGateway defines the credential-scoped platform surface
type AccountGateway interface {
	ResolveIdentity(ctx context.Context, credential string) (*domain.Identity, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// UserGateway defines the server-key platform user surface
type UserGateway interface {
	CreateUser(ctx context.Context, userID, email, password, name, phone string) (*domain.Identity, error)
	GetUser(ctx context.Context, userID string) (*domain.Identity, error)

	// FindUsersByEmail is the structured-query lookup path
	FindUsersByEmail(ctx context.Context, email string) (*domain.IdentityList, error)

	// ListAllUsers is the fallback lookup path, used only when the query
	// path fails
	ListAllUsers(ctx context.Context) (*domain.IdentityList, error)
}

// UserFinder resolves an identity by email. Two strategy implementations
// exist: query-based, and list-and-filter as a fallback on query failure.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
}
