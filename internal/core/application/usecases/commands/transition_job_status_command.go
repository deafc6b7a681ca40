package commands

import (
	"errors"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
)

var ErrTransitionJobStatusCommandIsNotConstructed = errors.New(
	"TransitionJobStatusCommand must be created via NewTransitionJobStatusCommand constructor",
)

// TransitionJobStatusCommand represents a request to move a job to a new
// lifecycle status. Repeating the current status is a valid request and
// produces its own timeline entry.
type TransitionJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	newStatus job.Status
	notes     string
	actor     kernel.Actor

	guard kernel.ConstructorGuard
}

// NewTransitionJobStatusCommand creates a command to change a job's status.
func NewTransitionJobStatusCommand(
	jobID kernel.UUID,
	newStatus job.Status,
	notes string,
	actor kernel.Actor,
) (TransitionJobStatusCommand, error) {
	cmd := TransitionJobStatusCommand{
		notes: notes,
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setNewStatus(newStatus),
		cmd.setActor(actor),
	); err != nil {
		return TransitionJobStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionJobStatusCommandIsNotConstructed)
}

// JobID returns the id of the job to transition.
func (c TransitionJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// NewStatus returns the requested target status.
func (c TransitionJobStatusCommand) NewStatus() job.Status {
	return c.newStatus
}

// Notes returns the free-text note to attach to the timeline entry.
func (c TransitionJobStatusCommand) Notes() string {
	return c.notes
}

// Actor returns the user performing the operation.
func (c TransitionJobStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *TransitionJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *TransitionJobStatusCommand) setNewStatus(newStatus job.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *TransitionJobStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
