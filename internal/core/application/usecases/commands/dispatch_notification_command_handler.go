package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/services"
)

// DispatchNotificationCommandHandler materializes the audience of a domain
// event and bulk-inserts one notification row per recipient. The actor never
// receives a notification for their own action, and a user matched by several
// audience rules receives exactly one row.
type DispatchNotificationCommandHandler struct {
	uowFactory DispatchUoWFactory
	resolver   services.AudienceResolver
}

// NewDispatchNotificationCommandHandler creates a handler for notification fan-out.
func NewDispatchNotificationCommandHandler(uowFactory DispatchUoWFactory) DispatchNotificationCommandHandler {
	return DispatchNotificationCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewAudienceResolver(),
	}
}

// Handle processes the dispatch command: resolve the audience rule, fetch the
// users behind role groups or broadcasts, merge and de-duplicate recipients,
// insert all rows in one transaction.
func (h DispatchNotificationCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event := cmd.Event()
	audience := h.resolver.AudienceFor(event)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var fetched []*user.User
	var err error
	switch {
	case audience.Broadcast:
		fetched, err = uow.UserRepository().GetAllActive(ctx)
	case len(audience.Roles) > 0:
		fetched, err = uow.UserRepository().GetAllByRoles(ctx, audience.Roles)
	}
	if err != nil {
		return err
	}

	recipients := h.resolver.MergeRecipients(event.ActorID, audience.Direct, fetched)
	if len(recipients) == 0 {
		return nil
	}

	now := time.Now().UTC()
	notifications := make([]*notification.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		n, err := notification.NewNotification(
			kernel.NewUUID(),
			recipientID,
			event.Type,
			cmd.Title(),
			cmd.Message(),
			cmd.RelatedEntityType(),
			cmd.RelatedEntityID(),
			now,
		)
		if err != nil {
			return err
		}
		notifications = append(notifications, n)
	}

	if err = uow.NotificationRepository().AddAll(ctx, notifications); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
