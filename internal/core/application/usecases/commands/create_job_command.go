package commands

import (
	"errors"

	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to register a new shipment job.
// Encapsulates the parcel details, the customer and the acting user.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID           kernel.UUID
	customerID      kernel.UUID
	pickupAddress   job.Address
	deliveryAddress job.Address
	weightKg        float64
	declaredValue   float64
	quantity        int
	priority        job.Priority
	actor           kernel.Actor

	guard kernel.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new shipment job.
// The parcel constraints themselves (positive quantity, non-negative weight
// and value) are enforced by the job aggregate; the command validates the
// identities, the addresses and the priority.
func NewCreateJobCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress job.Address,
	deliveryAddress job.Address,
	weightKg float64,
	declaredValue float64,
	quantity int,
	priority job.Priority,
	actor kernel.Actor,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		weightKg:      weightKg,
		declaredValue: declaredValue,
		quantity:      quantity,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setCustomerID(customerID),
		cmd.setAddresses(pickupAddress, deliveryAddress),
		cmd.setPriority(priority),
		cmd.setActor(actor),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the owning customer's id.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the collection location.
func (c CreateJobCommand) PickupAddress() job.Address {
	return c.pickupAddress
}

// DeliveryAddress returns the destination location.
func (c CreateJobCommand) DeliveryAddress() job.Address {
	return c.deliveryAddress
}

// WeightKg returns the parcel weight in kilograms.
func (c CreateJobCommand) WeightKg() float64 {
	return c.weightKg
}

// DeclaredValue returns the customer-declared parcel value.
func (c CreateJobCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// Quantity returns the number of packages.
func (c CreateJobCommand) Quantity() int {
	return c.quantity
}

// Priority returns the paid service level.
func (c CreateJobCommand) Priority() job.Priority {
	return c.priority
}

// Actor returns the user performing the operation.
func (c CreateJobCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setAddresses(pickup, delivery job.Address) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickupAddress = pickup
	c.deliveryAddress = delivery
	return nil
}

func (c *CreateJobCommand) setPriority(priority job.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateJobCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
