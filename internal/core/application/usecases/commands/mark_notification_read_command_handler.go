package commands

import (
	"context"
	"time"

	"logistics/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler handles marking a single notification as
// read. Users can only touch their own feed; marking twice keeps the first
// read timestamp.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for marking
// notifications read.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	n, err := uow.NotificationRepository().Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.UserID().IsEqual(cmd.Actor().ID()) {
		return errs.NewPermissionDeniedError(cmd.Actor().ID().String(),
			"mark another user's notification as read")
	}

	n.MarkRead(time.Now().UTC())
	if err = uow.NotificationRepository().Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
