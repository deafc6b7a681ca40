package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/tasks"
)

// TransitionJobStatusCommandHandler handles job status changes: authorization
// against the actor's role and assignment, the atomic status update plus
// timeline append, and the post-commit follow-ups. Reaching delivered
// triggers automatic draft invoicing; every change fans out a notification.
//
// The follow-ups are best effort. They run outside the transaction, so a
// failed invoice or notification never rolls back the status change.
type TransitionJobStatusCommandHandler struct {
	uowFactory     JobUoWFactory
	invoiceCreator DraftInvoiceCreator
	dispatcher     NotificationDispatcher
	runner         tasks.Runner
}

// NewTransitionJobStatusCommandHandler creates a handler for job status
// transitions.
func NewTransitionJobStatusCommandHandler(
	uowFactory JobUoWFactory,
	invoiceCreator DraftInvoiceCreator,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
) TransitionJobStatusCommandHandler {
	return TransitionJobStatusCommandHandler{
		uowFactory:     uowFactory,
		invoiceCreator: invoiceCreator,
		dispatcher:     dispatcher,
		runner:         runner,
	}
}

// Handle processes the status transition command.
func (h TransitionJobStatusCommandHandler) Handle(ctx context.Context, cmd TransitionJobStatusCommand) error {
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

	j, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = j.AuthorizeStatusChange(cmd.Actor()); err != nil {
		return err
	}

	if err = j.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = uow.JobRepository().Update(ctx, j); err != nil {
		return err
	}

	entry, err := job.NewTimelineEntry(
		kernel.NewUUID(), j.ID(), cmd.NewStatus(), cmd.Notes(), cmd.Actor().ID(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.TimelineRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.NewStatus() == job.StatusDelivered {
		h.submitDraftInvoice(j.ID(), cmd.Actor().ID())
	}
	h.submitStatusNotification(cmd.Actor(), j, cmd.NewStatus())
	return nil
}

func (h TransitionJobStatusCommandHandler) submitDraftInvoice(jobID kernel.UUID, actorID kernel.UUID) {
	h.runner.Submit("draft invoice", func(ctx context.Context) error {
		invoiceCmd, err := NewCreateDraftInvoiceCommand(jobID, actorID)
		if err != nil {
			return err
		}
		return h.invoiceCreator.Handle(ctx, invoiceCmd)
	})
}

func (h TransitionJobStatusCommandHandler) submitStatusNotification(
	actor kernel.Actor,
	j *job.Job,
	newStatus job.Status,
) {
	event := services.NotificationEvent{
		Type:      notification.EventJobStatusChanged,
		ActorID:   actor.ID(),
		DriverID:  j.Driver(),
		AgentID:   j.DeliveryAgent(),
		NewStatus: newStatus,
	}
	title := "Job Status Updated"
	message := fmt.Sprintf("Job %s is now %s", j.TrackingNumber(), newStatus.Label())
	jobID := j.ID()

	h.runner.Submit("job_status_changed notification", func(ctx context.Context) error {
		dispatchCmd, err := NewDispatchNotificationCommand(event, title, message, "job", jobID)
		if err != nil {
			return err
		}
		return h.dispatcher.Handle(ctx, dispatchCmd)
	})
}
