package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

var ErrDispatchNotificationCommandIsNotConstructed = errors.New(
	"DispatchNotificationCommand must be created via NewDispatchNotificationCommand constructor",
)

// DispatchNotificationCommand represents a request to fan a domain event out
// to every user its audience rules select. The mutating commands build one of
// these after their transaction commits and submit it via the task runner.
type DispatchNotificationCommand struct { //nolint:recvcheck //using for validation
	event             services.NotificationEvent
	title             string
	message           string
	relatedEntityType string
	relatedEntityID   kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDispatchNotificationCommand creates a command to notify the audience of
// a domain event. The event carries the type, the acting user and the
// identities the audience rules refer to.
func NewDispatchNotificationCommand(
	event services.NotificationEvent,
	title string,
	message string,
	relatedEntityType string,
	relatedEntityID kernel.UUID,
) (DispatchNotificationCommand, error) {
	cmd := DispatchNotificationCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEvent(event),
		cmd.setTitle(title),
		cmd.setRelatedEntity(relatedEntityType, relatedEntityID),
	); err != nil {
		return DispatchNotificationCommand{}, err
	}

	cmd.message = message
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationCommandIsNotConstructed)
}

// Event returns the domain event being fanned out.
func (c DispatchNotificationCommand) Event() services.NotificationEvent {
	return c.event
}

// Title returns the notification headline.
func (c DispatchNotificationCommand) Title() string {
	return c.title
}

// Message returns the notification body.
func (c DispatchNotificationCommand) Message() string {
	return c.message
}

// RelatedEntityType returns the kind of entity the event concerns.
func (c DispatchNotificationCommand) RelatedEntityType() string {
	return c.relatedEntityType
}

// RelatedEntityID returns the id of the entity the event concerns.
func (c DispatchNotificationCommand) RelatedEntityID() kernel.UUID {
	return c.relatedEntityID
}

func (c *DispatchNotificationCommand) setEvent(event services.NotificationEvent) error {
	if err := errors.Join(event.Type.Validate(), event.ActorID.Validate()); err != nil {
		return err
	}

	c.event = event
	return nil
}

func (c *DispatchNotificationCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *DispatchNotificationCommand) setRelatedEntity(entityType string, entityID kernel.UUID) error {
	if entityType == "" {
		return errs.NewValueIsRequiredError("relatedEntityType")
	}
	if err := entityID.Validate(); err != nil {
		return err
	}

	c.relatedEntityType = entityType
	c.relatedEntityID = entityID
	return nil
}
