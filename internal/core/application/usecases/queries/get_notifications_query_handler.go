package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNotificationsQueryHandler reads a user's notification feed straight
// from the database, newest first.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for feed queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the feed query. An empty feed is a valid result, not an
// error.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			title,
			message,
			related_entity_type,
			related_entity_id,
			is_read,
			read_at,
			created_at
		FROM notifications
		WHERE user_id = ?
		AND (? = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC, id
	`, query.UserID().Bytes(), query.UnreadOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feed := make([]NotificationResponse, 0)
	for rows.Next() {
		var resp NotificationResponse
		var id, relatedID uuid.UUID
		var readAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.EventType,
			&resp.Title,
			&resp.Message,
			&resp.RelatedEntityType,
			&relatedID,
			&resp.IsRead,
			&readAt,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.RelatedEntityID, err = kernel.UUIDFromBytes(relatedID[:]); err != nil {
			return nil, err
		}
		if readAt.Valid {
			t := readAt.Time
			resp.ReadAt = &t
		}
		feed = append(feed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return feed, nil
}
