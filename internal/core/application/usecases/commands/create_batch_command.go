package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrCreateBatchCommandIsNotConstructed = errors.New(
	"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
)

// CreateBatchCommand represents a request to group warehouse-ready jobs into
// a shipping batch. Eligibility is all-or-nothing: one ineligible member
// aborts the whole batch.
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID     kernel.UUID
	name        string
	route       string
	carrier     string
	trackingRef string
	jobIDs      []kernel.UUID
	actor       kernel.Actor

	guard kernel.ConstructorGuard
}

// NewCreateBatchCommand creates a command to batch the given jobs. Carrier
// and carrier tracking reference are optional at creation time.
func NewCreateBatchCommand(
	batchID kernel.UUID,
	name string,
	route string,
	carrier string,
	trackingRef string,
	jobIDs []kernel.UUID,
	actor kernel.Actor,
) (CreateBatchCommand, error) {
	cmd := CreateBatchCommand{
		carrier:     carrier,
		trackingRef: trackingRef,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchID(batchID),
		cmd.setName(name),
		cmd.setRoute(route),
		cmd.setJobIDs(jobIDs),
		cmd.setActor(actor),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the new batch.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// Name returns the operator-given batch name.
func (c CreateBatchCommand) Name() string {
	return c.name
}

// Route returns the destination route description.
func (c CreateBatchCommand) Route() string {
	return c.route
}

// Carrier returns the carrier handling the batch, possibly empty.
func (c CreateBatchCommand) Carrier() string {
	return c.carrier
}

// TrackingRef returns the carrier's own tracking reference, possibly empty.
func (c CreateBatchCommand) TrackingRef() string {
	return c.trackingRef
}

// JobIDs returns the ids of the member jobs.
func (c CreateBatchCommand) JobIDs() []kernel.UUID {
	return c.jobIDs
}

// Actor returns the user performing the operation.
func (c CreateBatchCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateBatchCommand) setRoute(route string) error {
	if route == "" {
		return errs.NewValueIsRequiredError("route")
	}

	c.route = route
	return nil
}

func (c *CreateBatchCommand) setJobIDs(jobIDs []kernel.UUID) error {
	if len(jobIDs) == 0 {
		return errs.NewValueIsRequiredError("jobIDs")
	}
	for _, id := range jobIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.jobIDs = jobIDs
	return nil
}

func (c *CreateBatchCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
