package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/tasks"
)

// AssignDriverCommandHandler handles driver assignment: verifies the target
// user exists, is active and actually holds the driver role, moves the job to
// assigned status with a timeline entry, and notifies the assignee after
// commit. An actor assigning a job to themselves gets no notification.
type AssignDriverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory AssignmentUoWFactory,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		runner:     runner,
	}
}

// Handle processes the driver assignment command.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return assignCrewMember(ctx, crewAssignment{
		uowFactory: h.uowFactory,
		dispatcher: h.dispatcher,
		runner:     h.runner,
		jobID:      cmd.JobID(),
		assigneeID: cmd.DriverID(),
		actor:      cmd.Actor(),
		role:       kernel.RoleDriver,
		roleNoun:   "driver",
		eventType:  notification.EventDriverAssigned,
		apply: func(j *job.Job, assigneeID kernel.UUID) error {
			return j.AssignDriver(assigneeID)
		},
	})
}

// crewAssignment carries the per-role specifics of an assignment so driver
// and delivery agent handlers share one flow.
type crewAssignment struct {
	uowFactory AssignmentUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
	jobID      kernel.UUID
	assigneeID kernel.UUID
	actor      kernel.Actor
	role       kernel.Role
	roleNoun   string
	eventType  notification.EventType
	apply      func(j *job.Job, assigneeID kernel.UUID) error
}

func assignCrewMember(ctx context.Context, a crewAssignment) error {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := uow.JobRepository().Get(ctx, a.jobID)
	if err != nil {
		return err
	}

	if err = j.AuthorizeStatusChange(a.actor); err != nil {
		return err
	}

	assignee, err := uow.UserRepository().Get(ctx, a.assigneeID)
	if err != nil {
		return err
	}
	if assignee.Role() != a.role {
		return errs.NewValueIsInvalidErrorWithCause(a.roleNoun+"ID",
			fmt.Errorf("user %s is not a %s", a.assigneeID, a.roleNoun))
	}
	if !assignee.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(a.roleNoun+"ID",
			fmt.Errorf("user %s is not active", a.assigneeID))
	}

	if err = a.apply(j, a.assigneeID); err != nil {
		return err
	}
	if err = uow.JobRepository().Update(ctx, j); err != nil {
		return err
	}

	entry, err := job.NewTimelineEntry(
		kernel.NewUUID(), j.ID(), j.Status(),
		fmt.Sprintf("%s assigned", assignee.Name()), a.actor.ID(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = uow.TimelineRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	submitAssignmentNotification(a, j.TrackingNumber())
	return nil
}

func submitAssignmentNotification(a crewAssignment, trackingNumber string) {
	assigneeID := a.assigneeID
	event := services.NotificationEvent{
		Type:       a.eventType,
		ActorID:    a.actor.ID(),
		AssigneeID: &assigneeID,
	}
	title := "New Assignment"
	message := fmt.Sprintf("You have been assigned to job %s", trackingNumber)
	jobID := a.jobID

	a.runner.Submit(a.eventType.String()+" notification", func(ctx context.Context) error {
		dispatchCmd, err := NewDispatchNotificationCommand(event, title, message, "job", jobID)
		if err != nil {
			return err
		}
		return a.dispatcher.Handle(ctx, dispatchCmd)
	})
}
