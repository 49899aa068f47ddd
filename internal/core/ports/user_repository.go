package ports

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and returns it with its generated identity.
	Add(ctx context.Context, aggregate *user.User) (*user.User, error)

	// Get retrieves a user by identifier.
	// Returns ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id int64) (*user.User, error)
}
