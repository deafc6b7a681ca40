package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrEscalateOverdueInvoicesCommandIsNotConstructed = errors.New(
	"EscalateOverdueInvoicesCommand must be created via NewEscalateOverdueInvoicesCommand constructor",
)

// EscalateOverdueInvoicesCommand represents one scheduled sweep over unpaid
// invoices whose due date has passed. It is submitted by the background job,
// never by a client.
type EscalateOverdueInvoicesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard kernel.ConstructorGuard
}

// NewEscalateOverdueInvoicesCommand creates a sweep command evaluating
// overdue status as of the given moment.
func NewEscalateOverdueInvoicesCommand(asOf time.Time) (EscalateOverdueInvoicesCommand, error) {
	if asOf.IsZero() {
		return EscalateOverdueInvoicesCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return EscalateOverdueInvoicesCommand{
		asOf:  asOf,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrEscalateOverdueInvoicesCommandIsNotConstructed)
}

// AsOf returns the moment overdue status is evaluated against.
func (c EscalateOverdueInvoicesCommand) AsOf() time.Time {
	return c.asOf
}
