package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/ids"
	"logistics/internal/pkg/tasks"
)

// CreateBatchCommandHandler handles batch creation: resolves the member jobs,
// aborts if any is missing or not at the warehouse, links the survivors,
// denormalizes the totals and commits everything in one transaction. The
// back office learns about the new batch after commit.
type CreateBatchCommandHandler struct {
	uowFactory BatchUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
}

// NewCreateBatchCommandHandler creates a handler for batch creation.
func NewCreateBatchCommandHandler(
	uowFactory BatchUoWFactory,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
) CreateBatchCommandHandler {
	return CreateBatchCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		runner:     runner,
	}
}

// Handle processes the batch creation command.
func (h CreateBatchCommandHandler) Handle(ctx context.Context, cmd CreateBatchCommand) error {
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

	jobs, err := uow.JobRepository().GetAllByIDs(ctx, cmd.JobIDs())
	if err != nil {
		return err
	}
	if len(jobs) != len(cmd.JobIDs()) {
		return errs.NewObjectNotFoundError("jobs", missingJobIDs(cmd.JobIDs(), jobs))
	}

	now := time.Now().UTC()
	b, err := batch.NewBatch(
		cmd.BatchID(),
		ids.NewBatchNumber(now),
		cmd.Name(),
		cmd.Route(),
		cmd.Carrier(),
		cmd.TrackingRef(),
		jobs,
	)
	if err != nil {
		return err
	}

	for _, j := range jobs {
		if err = j.AttachToBatch(b.ID()); err != nil {
			return err
		}
		if err = uow.JobRepository().Update(ctx, j); err != nil {
			return err
		}

		entry, entryErr := job.NewTimelineEntry(
			kernel.NewUUID(), j.ID(), j.Status(),
			fmt.Sprintf("Added to batch %s", b.BatchNumber()), cmd.Actor().ID(), now)
		if entryErr != nil {
			return entryErr
		}
		if err = uow.TimelineRepository().Add(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.BatchRepository().Add(ctx, b); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.submitCreatedNotification(cmd.Actor(), b)
	return nil
}

func missingJobIDs(requested []kernel.UUID, found []*job.Job) string {
	present := make(map[kernel.UUID]struct{}, len(found))
	for _, j := range found {
		present[j.ID()] = struct{}{}
	}

	missing := ""
	for _, id := range requested {
		if _, ok := present[id]; ok {
			continue
		}
		if missing != "" {
			missing += ", "
		}
		missing += id.String()
	}
	return missing
}

func (h CreateBatchCommandHandler) submitCreatedNotification(actor kernel.Actor, b *batch.Batch) {
	event := services.NotificationEvent{
		Type:    notification.EventBatchCreated,
		ActorID: actor.ID(),
	}
	title := "New Batch"
	message := fmt.Sprintf("Batch %s has been created with %d jobs", b.BatchNumber(), b.TotalJobs())
	batchID := b.ID()

	h.runner.Submit("batch_created notification", func(ctx context.Context) error {
		dispatchCmd, err := NewDispatchNotificationCommand(event, title, message, "batch", batchID)
		if err != nil {
			return err
		}
		return h.dispatcher.Handle(ctx, dispatchCmd)
	})
}
