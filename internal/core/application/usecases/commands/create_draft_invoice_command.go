package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrCreateDraftInvoiceCommandIsNotConstructed = errors.New(
	"CreateDraftInvoiceCommand must be created via NewCreateDraftInvoiceCommand constructor",
)

// CreateDraftInvoiceCommand represents a request to generate the automatic
// draft invoice for a delivered job. It is normally submitted via the task
// runner by the status transition handler, never directly by a client.
type CreateDraftInvoiceCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	actorID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewCreateDraftInvoiceCommand creates a command to bill the given job. The
// actor is the user whose status change triggered the billing.
func NewCreateDraftInvoiceCommand(jobID kernel.UUID, actorID kernel.UUID) (CreateDraftInvoiceCommand, error) {
	if err := errors.Join(jobID.Validate(), actorID.Validate()); err != nil {
		return CreateDraftInvoiceCommand{}, err
	}

	return CreateDraftInvoiceCommand{
		jobID:   jobID,
		actorID: actorID,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDraftInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftInvoiceCommandIsNotConstructed)
}

// JobID returns the id of the job to bill.
func (c CreateDraftInvoiceCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns the id of the user who triggered the billing.
func (c CreateDraftInvoiceCommand) ActorID() kernel.UUID {
	return c.actorID
}
