// Package notification contains the per-user notification rows created in
// bulk when domain events fan out, and the event vocabulary that drives the
// audience rules.
package notification

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// EventType identifies the domain event a notification was created for.
type EventType string

const (
	EventJobCreated       EventType = "job_created"
	EventJobStatusChanged EventType = "job_status_changed"
	EventDriverAssigned   EventType = "driver_assigned"
	EventAgentAssigned    EventType = "agent_assigned"
	EventBatchCreated     EventType = "batch_created"
	EventInvoiceOverdue   EventType = "invoice_overdue"
)

func validEventTypes() map[EventType]struct{} {
	return map[EventType]struct{}{
		EventJobCreated:       {},
		EventJobStatusChanged: {},
		EventDriverAssigned:   {},
		EventAgentAssigned:    {},
		EventBatchCreated:     {},
		EventInvoiceOverdue:   {},
	}
}

// Validate checks the event type against the known set.
func (e EventType) Validate() error {
	if _, ok := validEventTypes()[e]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%q is not a known event type", string(e)))
	}
	return nil
}

// String returns the wire form of the event type.
func (e EventType) String() string {
	return string(e)
}

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through a constructor.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification constructor")

// Notification is one row in a user's feed. Rows are immutable after
// creation except for the read state.
type Notification struct {
	id                kernel.UUID
	userID            kernel.UUID
	eventType         EventType
	title             string
	message           string
	relatedEntityType string
	relatedEntityID   kernel.UUID
	isRead            bool
	readAt            *time.Time
	createdAt         time.Time

	isConstructed bool
}

// NewNotification creates an unread notification for one recipient.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	eventType EventType,
	title string,
	message string,
	relatedEntityType string,
	relatedEntityID kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		eventType.Validate(),
		relatedEntityID.Validate(),
	); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Notification{
		id:                id,
		userID:            userID,
		eventType:         eventType,
		title:             title,
		message:           message,
		relatedEntityType: relatedEntityType,
		relatedEntityID:   relatedEntityID,
		createdAt:         createdAt,
		isConstructed:     true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	eventType EventType,
	title string,
	message string,
	relatedEntityType string,
	relatedEntityID kernel.UUID,
	isRead bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, eventType, title, message,
		relatedEntityType, relatedEntityID, createdAt)
	if err != nil {
		return nil, err
	}

	n.isRead = isRead
	n.readAt = readAt
	return n, nil
}

// Validate ensures the notification came from a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the recipient's id.
func (n *Notification) UserID() kernel.UUID { return n.userID }

// EventType returns the originating event type.
func (n *Notification) EventType() EventType { return n.eventType }

// Title returns the short headline.
func (n *Notification) Title() string { return n.title }

// Message returns the body text.
func (n *Notification) Message() string { return n.message }

// RelatedEntityType returns the kind of entity the event concerns
// ("job", "batch", "invoice").
func (n *Notification) RelatedEntityType() string { return n.relatedEntityType }

// RelatedEntityID returns the id of the entity the event concerns.
func (n *Notification) RelatedEntityID() kernel.UUID { return n.relatedEntityID }

// IsRead reports whether the recipient has read the notification.
func (n *Notification) IsRead() bool { return n.isRead }

// ReadAt returns when the notification was read, or nil.
func (n *Notification) ReadAt() *time.Time { return n.readAt }

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead flips the read state. Reading twice keeps the first timestamp.
func (n *Notification) MarkRead(at time.Time) {
	if n.isRead {
		return
	}
	n.isRead = true
	readAt := at
	n.readAt = &readAt
}
