package repository

import (
	"context"

	authdomain "refine-backend/internal/auth/domain"
)

// UserRepository is the user directory.
type UserRepository interface {
	// FindOrCreate matches on (provider, provider_id). An existing user gets
	// only the non-nil profile fields overwritten; otherwise a user is created.
	FindOrCreate(ctx context.Context, profile authdomain.UserProfile) (*authdomain.User, error)

	// FindByID returns nil, nil when no user has the id.
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
}
