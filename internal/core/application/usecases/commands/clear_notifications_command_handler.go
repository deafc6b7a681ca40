package commands

import (
	"context"
)

// ClearNotificationsCommandHandler handles deleting a user's entire feed.
type ClearNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewClearNotificationsCommandHandler creates a handler for clearing feeds.
func NewClearNotificationsCommandHandler(uowFactory NotificationUoWFactory) ClearNotificationsCommandHandler {
	return ClearNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command.
func (h ClearNotificationsCommandHandler) Handle(ctx context.Context, cmd ClearNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().DeleteAllForUser(ctx, cmd.Actor().ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
