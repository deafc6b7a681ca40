package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
	"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
)

// MarkInvoicePaidCommand represents a request to settle an invoice, recording
// how it was paid.
type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	invoiceID        kernel.UUID
	paymentMethod    string
	paymentReference string
	actor            kernel.Actor

	guard kernel.ConstructorGuard
}

// NewMarkInvoicePaidCommand creates a command to settle an invoice. The
// payment reference is optional; the method is not.
func NewMarkInvoicePaidCommand(
	invoiceID kernel.UUID,
	paymentMethod string,
	paymentReference string,
	actor kernel.Actor,
) (MarkInvoicePaidCommand, error) {
	if err := errors.Join(invoiceID.Validate(), actor.Validate()); err != nil {
		return MarkInvoicePaidCommand{}, err
	}
	if paymentMethod == "" {
		return MarkInvoicePaidCommand{}, errs.NewValueIsRequiredError("paymentMethod")
	}

	return MarkInvoicePaidCommand{
		invoiceID:        invoiceID,
		paymentMethod:    paymentMethod,
		paymentReference: paymentReference,
		actor:            actor,
		guard:            kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

// InvoiceID returns the id of the invoice to settle.
func (c MarkInvoicePaidCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// PaymentMethod returns how the invoice was paid.
func (c MarkInvoicePaidCommand) PaymentMethod() string {
	return c.paymentMethod
}

// PaymentReference returns the payment's external reference, possibly empty.
func (c MarkInvoicePaidCommand) PaymentReference() string {
	return c.paymentReference
}

// Actor returns the user performing the operation.
func (c MarkInvoicePaidCommand) Actor() kernel.Actor {
	return c.actor
}
