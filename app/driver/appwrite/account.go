package appwrite

import (
	"context"

	"github.com/appwrite/sdk-for-go/account"

	"beesides-api/app/domain"
)

// Account is the platform's credential-scoped account surface. Its Get
// operation resolves the identity behind the client's JWT, so it is only
// meaningful on a request-scoped client built with WithJWT.
type Account struct {
	api *account.Account
}

// Get resolves the identity of the credential the client carries
func (a *Account) Get(ctx context.Context) (*domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := a.api.Get()
	if err != nil {
		return nil, platformError(err)
	}

	var identity domain.Identity
	if err := decode(user, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// DeleteSession deletes a platform session by id
func (a *Account) DeleteSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := a.api.DeleteSession(sessionID); err != nil {
		return platformError(err)
	}
	return nil
}
