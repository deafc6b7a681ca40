package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
)

// MarkAllNotificationsReadCommand represents a request by a user to mark
// their entire feed as read.
type MarkAllNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard kernel.ConstructorGuard
}

// NewMarkAllNotificationsReadCommand creates a command to mark a user's whole
// feed as read.
func NewMarkAllNotificationsReadCommand(actor kernel.Actor) (MarkAllNotificationsReadCommand, error) {
	if err := actor.Validate(); err != nil {
		return MarkAllNotificationsReadCommand{}, err
	}

	return MarkAllNotificationsReadCommand{
		actor: actor,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// Actor returns the user performing the operation.
func (c MarkAllNotificationsReadCommand) Actor() kernel.Actor {
	return c.actor
}
