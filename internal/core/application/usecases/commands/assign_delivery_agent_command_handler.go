package commands

import (
	"context"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/pkg/tasks"
)

// AssignDeliveryAgentCommandHandler handles last-mile agent assignment. Same
// flow as driver assignment with the delivery_agent role and out_for_delivery
// as the forced status.
type AssignDeliveryAgentCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
}

// NewAssignDeliveryAgentCommandHandler creates a handler for delivery agent
// assignment.
func NewAssignDeliveryAgentCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
) AssignDeliveryAgentCommandHandler {
	return AssignDeliveryAgentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		runner:     runner,
	}
}

// Handle processes the delivery agent assignment command.
func (h AssignDeliveryAgentCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return assignCrewMember(ctx, crewAssignment{
		uowFactory: h.uowFactory,
		dispatcher: h.dispatcher,
		runner:     h.runner,
		jobID:      cmd.JobID(),
		assigneeID: cmd.AgentID(),
		actor:      cmd.Actor(),
		role:       kernel.RoleDeliveryAgent,
		roleNoun:   "agent",
		eventType:  notification.EventAgentAssigned,
		apply: func(j *job.Job, assigneeID kernel.UUID) error {
			return j.AssignDeliveryAgent(assigneeID)
		},
	})
}
