// Package notificationrepo persists per-user notification rows. Fan-outs
// arrive as batches and are written with a single insert.
package notificationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the database row for one feed entry.
type NotificationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;index"`
	EventType         string
	Title             string
	Message           string
	RelatedEntityType string
	RelatedEntityID   uuid.UUID `gorm:"type:uuid"`
	IsRead            bool      `gorm:"index"`
	ReadAt            *time.Time
	CreatedAt         time.Time
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:                n.ID().Bytes(),
		UserID:            n.UserID().Bytes(),
		EventType:         n.EventType().String(),
		Title:             n.Title(),
		Message:           n.Message(),
		RelatedEntityType: n.RelatedEntityType(),
		RelatedEntityID:   n.RelatedEntityID().Bytes(),
		IsRead:            n.IsRead(),
		ReadAt:            n.ReadAt(),
		CreatedAt:         n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	relatedEntityID, err := kernel.UUIDFromBytes(dto.RelatedEntityID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		userID,
		notification.EventType(dto.EventType),
		dto.Title,
		dto.Message,
		dto.RelatedEntityType,
		relatedEntityID,
		dto.IsRead,
		dto.ReadAt,
		dto.CreatedAt,
	)
}
