package commands

import (
	"errors"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
)

var ErrUpdateBatchStatusCommandIsNotConstructed = errors.New(
	"UpdateBatchStatusCommand must be created via NewUpdateBatchStatusCommand constructor",
)

// UpdateBatchStatusCommand represents a request to move a batch to a new
// status, cascading the matching job status to every member.
type UpdateBatchStatusCommand struct { //nolint:recvcheck //using for validation
	batchID   kernel.UUID
	newStatus batch.Status
	notes     string
	actor     kernel.Actor

	guard kernel.ConstructorGuard
}

// NewUpdateBatchStatusCommand creates a command to change a batch's status.
func NewUpdateBatchStatusCommand(
	batchID kernel.UUID,
	newStatus batch.Status,
	notes string,
	actor kernel.Actor,
) (UpdateBatchStatusCommand, error) {
	if err := errors.Join(batchID.Validate(), newStatus.Validate(), actor.Validate()); err != nil {
		return UpdateBatchStatusCommand{}, err
	}

	return UpdateBatchStatusCommand{
		batchID:   batchID,
		newStatus: newStatus,
		notes:     notes,
		actor:     actor,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBatchStatusCommandIsNotConstructed)
}

// BatchID returns the id of the batch to update.
func (c UpdateBatchStatusCommand) BatchID() kernel.UUID {
	return c.batchID
}

// NewStatus returns the requested target status.
func (c UpdateBatchStatusCommand) NewStatus() batch.Status {
	return c.newStatus
}

// Notes returns the operator note attached to the change.
func (c UpdateBatchStatusCommand) Notes() string {
	return c.notes
}

// Actor returns the user performing the operation.
func (c UpdateBatchStatusCommand) Actor() kernel.Actor {
	return c.actor
}
