package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for per-user
// notification rows.
type NotificationRepository interface {
	// AddAll persists a fan-out of notification rows in one statement.
	AddAll(ctx context.Context, notifications []*notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Update persists the read state of a notification.
	Update(ctx context.Context, n *notification.Notification) error

	// MarkAllReadForUser marks every unread notification of a user as read.
	MarkAllReadForUser(ctx context.Context, userID kernel.UUID) error

	// DeleteAllForUser clears a user's feed.
	DeleteAllForUser(ctx context.Context, userID kernel.UUID) error
}
