package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var ErrSendInvoiceCommandIsNotConstructed = errors.New(
	"SendInvoiceCommand must be created via NewSendInvoiceCommand constructor",
)

// SendInvoiceCommand represents a request to issue a draft invoice to the
// customer, moving it to pending with a fresh issue date.
type SendInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	actor     kernel.Actor

	guard kernel.ConstructorGuard
}

// NewSendInvoiceCommand creates a command to send a draft invoice.
func NewSendInvoiceCommand(invoiceID kernel.UUID, actor kernel.Actor) (SendInvoiceCommand, error) {
	if err := errors.Join(invoiceID.Validate(), actor.Validate()); err != nil {
		return SendInvoiceCommand{}, err
	}

	return SendInvoiceCommand{
		invoiceID: invoiceID,
		actor:     actor,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSendInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the id of the invoice to send.
func (c SendInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Actor returns the user performing the operation.
func (c SendInvoiceCommand) Actor() kernel.Actor {
	return c.actor
}
