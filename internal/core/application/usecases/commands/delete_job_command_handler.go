package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// DeleteJobCommandHandler handles job deletion. Only administrators may
// delete, and only while the parcel has not physically entered the network;
// the timeline and document records go in the same transaction so no
// orphaned children survive.
type DeleteJobCommandHandler struct {
	uowFactory JobDeletionUoWFactory
}

// NewDeleteJobCommandHandler creates a handler for job deletion.
func NewDeleteJobCommandHandler(uowFactory JobDeletionUoWFactory) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job deletion command.
func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != kernel.RoleAdmin && cmd.Actor().Role() != kernel.RoleSuperAdmin {
		return errs.NewPermissionDeniedError(cmd.Actor().ID().String(), "delete jobs")
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

	if err = j.EnsureDeletable(); err != nil {
		return err
	}

	if err = uow.TimelineRepository().DeleteAllForJob(ctx, j.ID()); err != nil {
		return err
	}
	if err = uow.DocumentRepository().DeleteAllForJob(ctx, j.ID()); err != nil {
		return err
	}
	if err = uow.JobRepository().Delete(ctx, j.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
