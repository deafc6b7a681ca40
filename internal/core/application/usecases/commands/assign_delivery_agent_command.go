package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrAssignDeliveryAgentCommandIsNotConstructed = errors.New(
	"AssignDeliveryAgentCommand must be created via NewAssignDeliveryAgentCommand constructor",
)

// AssignDeliveryAgentCommand represents a request to put a delivery agent on
// a job's last-mile leg. Assignment forces the job into out_for_delivery
// status.
type AssignDeliveryAgentCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	agentID kernel.UUID
	actor   kernel.Actor

	guard kernel.ConstructorGuard
}

// NewAssignDeliveryAgentCommand creates a command to assign a delivery agent
// to a job.
func NewAssignDeliveryAgentCommand(
	jobID kernel.UUID,
	agentID kernel.UUID,
	actor kernel.Actor,
) (AssignDeliveryAgentCommand, error) {
	if err := errors.Join(jobID.Validate(), agentID.Validate(), actor.Validate()); err != nil {
		return AssignDeliveryAgentCommand{}, err
	}

	return AssignDeliveryAgentCommand{
		jobID:   jobID,
		agentID: agentID,
		actor:   actor,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryAgentCommandIsNotConstructed)
}

// JobID returns the id of the job to assign.
func (c AssignDeliveryAgentCommand) JobID() kernel.UUID {
	return c.jobID
}

// AgentID returns the id of the delivery agent to assign.
func (c AssignDeliveryAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Actor returns the user performing the operation.
func (c AssignDeliveryAgentCommand) Actor() kernel.Actor {
	return c.actor
}
