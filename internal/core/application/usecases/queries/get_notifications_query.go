package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves one user's notification feed, newest
// first, optionally narrowed to unread rows.
type GetNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard kernel.ConstructorGuard
}

// NewGetNotificationsQuery creates a feed query for the given user.
func NewGetNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the id of the user whose feed is requested.
func (q GetNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// UnreadOnly reports whether read rows are filtered out.
func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// NotificationResponse is one feed row.
type NotificationResponse struct {
	ID                kernel.UUID
	EventType         string
	Title             string
	Message           string
	RelatedEntityType string
	RelatedEntityID   kernel.UUID
	IsRead            bool
	ReadAt            *time.Time
	CreatedAt         time.Time
}
