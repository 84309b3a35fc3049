package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"beesides-api/app/domain"
	"beesides-api/app/port"
)

// QueryUserFinder resolves an identity through the platform's structured
// query mechanism. This is the primary login lookup strategy.
type QueryUserFinder struct {
	users port.UserGateway
}

// NewQueryUserFinder creates a query-based user finder
func NewQueryUserFinder(users port.UserGateway) *QueryUserFinder {
	return &QueryUserFinder{users: users}
}

// FindByEmail looks up a user by email via a structured query
func (f *QueryUserFinder) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	list, err := f.users.FindUsersByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if list.Total == 0 || len(list.Users) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
	}

	return &list.Users[0], nil
}

// ListUserFinder resolves an identity by listing all platform users and
// filtering in memory. Used only as a fallback when the query path fails.
type ListUserFinder struct {
	users port.UserGateway
}

// NewListUserFinder creates a list-and-filter user finder
func NewListUserFinder(users port.UserGateway) *ListUserFinder {
	return &ListUserFinder{users: users}
}

// FindByEmail lists all users and filters by email in memory
func (f *ListUserFinder) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	list, err := f.users.ListAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list.Users {
		if strings.EqualFold(list.Users[i].Email, email) {
			return &list.Users[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, email)
}

// FallbackUserFinder tries the primary strategy and falls back to the
// secondary only when the primary FAILS. A clean zero-match result is final
// and does not trigger the fallback.
type FallbackUserFinder struct {
	primary  port.UserFinder
	fallback port.UserFinder
	logger   *slog.Logger
}

// NewFallbackUserFinder composes two finder strategies
func NewFallbackUserFinder(primary, fallback port.UserFinder, logger *slog.Logger) *FallbackUserFinder {
	return &FallbackUserFinder{
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "user_finder"),
	}
}

// FindByEmail resolves an identity by email
func (f *FallbackUserFinder) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	identity, err := f.primary.FindByEmail(ctx, email)
	if err == nil {
		return identity, nil
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	f.logger.Warn("query-based lookup failed, falling back to list-and-filter", "error", err)
	return f.fallback.FindByEmail(ctx, email)
}
