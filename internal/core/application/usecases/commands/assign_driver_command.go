package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to put a driver on a job's
// collection leg. Assignment forces the job into assigned status.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	driverID kernel.UUID
	actor    kernel.Actor

	guard kernel.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a job.
func NewAssignDriverCommand(
	jobID kernel.UUID,
	driverID kernel.UUID,
	actor kernel.Actor,
) (AssignDriverCommand, error) {
	if err := errors.Join(jobID.Validate(), driverID.Validate(), actor.Validate()); err != nil {
		return AssignDriverCommand{}, err
	}

	return AssignDriverCommand{
		jobID:    jobID,
		driverID: driverID,
		actor:    actor,
		guard:    kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// JobID returns the id of the job to assign.
func (c AssignDriverCommand) JobID() kernel.UUID {
	return c.jobID
}

// DriverID returns the id of the driver to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Actor returns the user performing the operation.
func (c AssignDriverCommand) Actor() kernel.Actor {
	return c.actor
}
