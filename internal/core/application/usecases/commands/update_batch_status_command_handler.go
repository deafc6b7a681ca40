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

// UpdateBatchStatusCommandHandler handles batch status changes. When the new
// batch status maps to a job status (shipped, in_transit, arrived,
// distributed), every member job is moved to it with its own timeline entry,
// all in the batch's transaction. Members already carrying the cascaded
// status are overwritten and get a fresh timeline entry like everyone else.
//
// After commit, one status notification goes out per affected job so each
// job's own crew is addressed.
type UpdateBatchStatusCommandHandler struct {
	uowFactory BatchUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
}

// NewUpdateBatchStatusCommandHandler creates a handler for batch status
// changes.
func NewUpdateBatchStatusCommandHandler(
	uowFactory BatchUoWFactory,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
) UpdateBatchStatusCommandHandler {
	return UpdateBatchStatusCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		runner:     runner,
	}
}

// Handle processes the batch status change command.
func (h UpdateBatchStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBatchStatusCommand) error {
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

	now := time.Now().UTC()
	b, err := uow.BatchRepository().Get(ctx, cmd.BatchID())
	if err != nil {
		return err
	}

	if err = b.ChangeStatus(cmd.NewStatus(), now); err != nil {
		return err
	}
	if cmd.Notes() != "" {
		b.UpdateNotes(cmd.Notes())
	}
	if err = uow.BatchRepository().Update(ctx, b); err != nil {
		return err
	}

	var affected []*job.Job
	if jobStatus, cascades := cmd.NewStatus().JobCascadeStatus(); cascades {
		affected, err = h.cascadeToMembers(ctx, uow, cmd, jobStatus, now)
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if jobStatus, cascades := cmd.NewStatus().JobCascadeStatus(); cascades {
		for _, j := range affected {
			h.submitStatusNotification(cmd.Actor(), j, jobStatus)
		}
	}
	return nil
}

func (h UpdateBatchStatusCommandHandler) cascadeToMembers(
	ctx context.Context,
	uow BatchUoW,
	cmd UpdateBatchStatusCommand,
	jobStatus job.Status,
	now time.Time,
) ([]*job.Job, error) {
	members, err := uow.JobRepository().GetAllInBatch(ctx, cmd.BatchID())
	if err != nil {
		return nil, err
	}

	for _, j := range members {
		if err = j.ChangeStatus(jobStatus); err != nil {
			return nil, err
		}
		if err = uow.JobRepository().Update(ctx, j); err != nil {
			return nil, err
		}

		entry, entryErr := job.NewTimelineEntry(
			kernel.NewUUID(), j.ID(), jobStatus, cmd.Notes(), cmd.Actor().ID(), now)
		if entryErr != nil {
			return nil, entryErr
		}
		if err = uow.TimelineRepository().Add(ctx, entry); err != nil {
			return nil, err
		}
	}

	return members, nil
}

func (h UpdateBatchStatusCommandHandler) submitStatusNotification(
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
