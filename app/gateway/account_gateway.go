package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"beesides-api/app/domain"
	"beesides-api/app/driver/appwrite"
)

// AccountGateway implements port.AccountGateway.
// It acts as an anti-corruption layer between the domain and the platform's
// credential-scoped account surface.
type AccountGateway struct {
	client *appwrite.Client
	logger *slog.Logger
}

// NewAccountGateway creates a new AccountGateway instance
func NewAccountGateway(client *appwrite.Client, logger *slog.Logger) *AccountGateway {
	return &AccountGateway{
		client: client,
		logger: logger.With("component", "account_gateway"),
	}
}

// ResolveIdentity resolves the identity behind a bearer credential using a
// request-scoped platform handle. The handle is discarded after the call.
func (g *AccountGateway) ResolveIdentity(ctx context.Context, credential string) (*domain.Identity, error) {
	identity, err := g.client.WithJWT(credential).Account().Get(ctx)
	if err != nil {
		if appwrite.IsAuthFailure(err) {
			g.logger.Debug("credential rejected by platform", "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredential, err)
		}
		g.logger.Error("identity resolution failed", "error", err)
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	return identity, nil
}

// DeleteSession deletes a platform session
func (g *AccountGateway) DeleteSession(ctx context.Context, sessionID string) error {
	if err := g.client.Account().DeleteSession(ctx, sessionID); err != nil {
		g.logger.Error("failed to delete session", "session_id", sessionID, "error", err)
		return platformError("failed to delete session", err)
	}

	g.logger.Info("session deleted", "session_id", sessionID)
	return nil
}
