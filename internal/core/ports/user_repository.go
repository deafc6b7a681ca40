package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository defines the read-only contract over the identity store.
// Users are owned by the external authentication system; this application
// only looks them up when resolving notification audiences and validating
// assignments.
type UserRepository interface {
	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAllByRoles retrieves the active users holding any of the given roles.
	GetAllByRoles(ctx context.Context, roles []kernel.Role) ([]*user.User, error)

	// GetAllActive retrieves every active user. Used for broadcast audiences.
	GetAllActive(ctx context.Context) ([]*user.User, error)
}
