package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

// DeleteJobCommand represents a request to remove a job together with its
// timeline and documents.
type DeleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID
	actor kernel.Actor

	guard kernel.ConstructorGuard
}

// NewDeleteJobCommand creates a command to delete a job.
func NewDeleteJobCommand(jobID kernel.UUID, actor kernel.Actor) (DeleteJobCommand, error) {
	if err := errors.Join(jobID.Validate(), actor.Validate()); err != nil {
		return DeleteJobCommand{}, err
	}

	return DeleteJobCommand{
		jobID: jobID,
		actor: actor,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

// JobID returns the id of the job to delete.
func (c DeleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Actor returns the user performing the operation.
func (c DeleteJobCommand) Actor() kernel.Actor {
	return c.actor
}
