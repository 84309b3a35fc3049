package gateway

import (
	"context"
	"log/slog"

	"beesides-api/app/domain"
	"beesides-api/app/driver/appwrite"
)

// UserGateway implements port.UserGateway over the platform's server-key
// user management surface
type UserGateway struct {
	client *appwrite.Client
	logger *slog.Logger
}

// NewUserGateway creates a new UserGateway instance
func NewUserGateway(client *appwrite.Client, logger *slog.Logger) *UserGateway {
	return &UserGateway{
		client: client,
		logger: logger.With("component", "user_gateway"),
	}
}

// CreateUser creates a new platform user
func (g *UserGateway) CreateUser(ctx context.Context, userID, email, password, name, phone string) (*domain.Identity, error) {
	identity, err := g.client.Users().Create(ctx, userID, email, password, name, phone)
	if err != nil {
		g.logger.Error("failed to create user", "email", email, "error", err)
		return nil, platformError("failed to register user", err)
	}

	g.logger.Info("user created", "user_id", identity.ID, "email", email)
	return identity, nil
}

// GetUser fetches a platform user by id
func (g *UserGateway) GetUser(ctx context.Context, userID string) (*domain.Identity, error) {
	identity, err := g.client.Users().Get(ctx, userID)
	if err != nil {
		g.logger.Debug("failed to get user", "user_id", userID, "error", err)
		return nil, platformError("failed to get user", err)
	}

	return identity, nil
}

// FindUsersByEmail looks up users through the platform's structured query
// mechanism (primary login lookup path)
func (g *UserGateway) FindUsersByEmail(ctx context.Context, email string) (*domain.IdentityList, error) {
	list, err := g.client.Users().List(ctx, []string{appwrite.QueryEqual("email", email)})
	if err != nil {
		g.logger.Warn("query-based user lookup failed", "error", err)
		return nil, platformError("failed to find user", err)
	}

	return list, nil
}

// ListAllUsers lists every platform user (fallback login lookup path)
func (g *UserGateway) ListAllUsers(ctx context.Context) (*domain.IdentityList, error) {
	list, err := g.client.Users().List(ctx, nil)
	if err != nil {
		g.logger.Error("user listing failed", "error", err)
		return nil, platformError("failed to list users", err)
	}

	return list, nil
}
