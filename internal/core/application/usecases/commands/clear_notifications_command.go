package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrClearNotificationsCommandIsNotConstructed = errors.New(
	"ClearNotificationsCommand must be created via NewClearNotificationsCommand constructor",
)

// ClearNotificationsCommand represents a request by a user to delete their
// entire notification feed.
type ClearNotificationsCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Actor

	guard kernel.ConstructorGuard
}

// NewClearNotificationsCommand creates a command to clear a user's feed.
func NewClearNotificationsCommand(actor kernel.Actor) (ClearNotificationsCommand, error) {
	if err := actor.Validate(); err != nil {
		return ClearNotificationsCommand{}, err
	}

	return ClearNotificationsCommand{
		actor: actor,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrClearNotificationsCommandIsNotConstructed)
}

// Actor returns the user performing the operation.
func (c ClearNotificationsCommand) Actor() kernel.Actor {
	return c.actor
}
