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
	"logistics/internal/pkg/ids"
	"logistics/internal/pkg/tasks"
)

// trackingNumberAttempts bounds the generate-and-check loop for tracking
// numbers. The space is large enough that exhausting the bound means the
// generator is broken, not unlucky.
const trackingNumberAttempts = 10

// CreateJobCommandHandler handles the business logic for job registration.
// Generates a unique tracking number, persists the job in pending status
// together with its first timeline entry, and fans out the creation event
// after commit.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
}

// NewCreateJobCommandHandler creates a handler for job registration.
func NewCreateJobCommandHandler(
	uowFactory JobUoWFactory,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		runner:     runner,
	}
}

// Handle processes the job creation command. Only back-office staff may
// register jobs; the customer of record is a parameter, not the actor.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := authorizeJobCreation(cmd.Actor()); err != nil {
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
	trackingNumber, err := h.uniqueTrackingNumber(ctx, uow, now)
	if err != nil {
		return err
	}

	j, err := job.NewJob(
		cmd.JobID(),
		trackingNumber,
		cmd.CustomerID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.WeightKg(),
		cmd.DeclaredValue(),
		cmd.Quantity(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	if err = uow.JobRepository().Add(ctx, j); err != nil {
		return err
	}

	entry, err := job.NewTimelineEntry(
		kernel.NewUUID(), j.ID(), j.Status(), "Job created", cmd.Actor().ID(), now)
	if err != nil {
		return err
	}
	if err = uow.TimelineRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.submitCreatedNotification(cmd.Actor(), j)
	return nil
}

// uniqueTrackingNumber runs the generate, look up, retry-on-collision loop.
func (h CreateJobCommandHandler) uniqueTrackingNumber(
	ctx context.Context,
	uow JobUoW,
	now time.Time,
) (string, error) {
	var candidate string
	for range trackingNumberAttempts {
		candidate = ids.NewTrackingNumber(now)
		exists, err := uow.JobRepository().TrackingNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", errs.NewConflictError("trackingNumber", candidate)
}

func (h CreateJobCommandHandler) submitCreatedNotification(actor kernel.Actor, j *job.Job) {
	event := services.NotificationEvent{
		Type:     notification.EventJobCreated,
		ActorID:  actor.ID(),
		DriverID: j.Driver(),
	}
	title := "New Shipment Job"
	message := fmt.Sprintf("Job %s has been created", j.TrackingNumber())
	jobID := j.ID()

	h.runner.Submit("job_created notification", func(ctx context.Context) error {
		dispatchCmd, err := NewDispatchNotificationCommand(event, title, message, "job", jobID)
		if err != nil {
			return err
		}
		return h.dispatcher.Handle(ctx, dispatchCmd)
	})
}

// authorizeJobCreation limits registration to the back-office staff who take
// bookings: admin, superadmin and customer service.
func authorizeJobCreation(actor kernel.Actor) error {
	switch actor.Role() {
	case kernel.RoleAdmin, kernel.RoleSuperAdmin, kernel.RoleCustomerService:
		return nil
	default:
		return errs.NewPermissionDeniedError(actor.ID().String(), "create jobs")
	}
}
