package appwrite

import (
	"context"

	"github.com/appwrite/sdk-for-go/users"

	"beesides-api/app/domain"
)

// Users is the platform's user management surface
type Users struct {
	api *users.Users
}

// Create creates a new platform user. Phone is optional and omitted from
// the call when empty so the platform skips phone validation.
func (u *Users) Create(ctx context.Context, userID, email, password, name, phone string) (*domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []users.CreateOption{
		u.api.WithCreateEmail(email),
		u.api.WithCreatePassword(password),
		u.api.WithCreateName(name),
	}
	if phone != "" {
		opts = append(opts, u.api.WithCreatePhone(phone))
	}

	user, err := u.api.Create(userID, opts...)
	if err != nil {
		return nil, platformError(err)
	}

	var identity domain.Identity
	if err := decode(user, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// Get fetches a platform user by id
func (u *Users) Get(ctx context.Context, userID string) (*domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := u.api.Get(userID)
	if err != nil {
		return nil, platformError(err)
	}

	var identity domain.Identity
	if err := decode(user, &identity); err != nil {
		return nil, err
	}

	return &identity, nil
}

// List lists platform users, optionally filtered by serialized queries
func (u *Users) List(ctx context.Context, queries []string) (*domain.IdentityList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var opts []users.ListOption
	if len(queries) > 0 {
		opts = append(opts, u.api.WithListQueries(queries))
	}

	result, err := u.api.List(opts...)
	if err != nil {
		return nil, platformError(err)
	}

	var list domain.IdentityList
	if err := decode(result, &list); err != nil {
		return nil, err
	}

	return &list, nil
}
