package commands

import (
	"errors"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
)

var ErrUpdateInvoiceCommandIsNotConstructed = errors.New(
	"UpdateInvoiceCommand must be created via NewUpdateInvoiceCommand constructor",
)

// UpdateInvoiceCommand represents a request to edit a draft invoice. The
// patch distinguishes absent fields (leave unchanged) from present ones; none
// of the patchable fields are clearable.
type UpdateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	patch     invoice.UpdatePatch
	actor     kernel.Actor

	guard kernel.ConstructorGuard
}

// NewUpdateInvoiceCommand creates a command to edit a draft invoice.
func NewUpdateInvoiceCommand(
	invoiceID kernel.UUID,
	patch invoice.UpdatePatch,
	actor kernel.Actor,
) (UpdateInvoiceCommand, error) {
	if err := errors.Join(invoiceID.Validate(), actor.Validate()); err != nil {
		return UpdateInvoiceCommand{}, err
	}

	return UpdateInvoiceCommand{
		invoiceID: invoiceID,
		patch:     patch,
		actor:     actor,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the id of the invoice to edit.
func (c UpdateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Patch returns the optional field edits.
func (c UpdateInvoiceCommand) Patch() invoice.UpdatePatch {
	return c.patch
}

// Actor returns the user performing the operation.
func (c UpdateInvoiceCommand) Actor() kernel.Actor {
	return c.actor
}
