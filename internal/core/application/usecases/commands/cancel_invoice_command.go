package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrCancelInvoiceCommandIsNotConstructed = errors.New(
	"CancelInvoiceCommand must be created via NewCancelInvoiceCommand constructor",
)

// CancelInvoiceCommand represents a request to void an invoice.
type CancelInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	actor     kernel.Actor

	guard kernel.ConstructorGuard
}

// NewCancelInvoiceCommand creates a command to cancel an invoice.
func NewCancelInvoiceCommand(invoiceID kernel.UUID, actor kernel.Actor) (CancelInvoiceCommand, error) {
	if err := errors.Join(invoiceID.Validate(), actor.Validate()); err != nil {
		return CancelInvoiceCommand{}, err
	}

	return CancelInvoiceCommand{
		invoiceID: invoiceID,
		actor:     actor,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCancelInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the id of the invoice to cancel.
func (c CancelInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Actor returns the user performing the operation.
func (c CancelInvoiceCommand) Actor() kernel.Actor {
	return c.actor
}
