package commands

import (
	"context"
	"time"
)

// MarkInvoicePaidCommandHandler handles invoice settlement. Any non-paid
// status may settle; settling twice fails in the aggregate.
type MarkInvoicePaidCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewMarkInvoicePaidCommandHandler creates a handler for invoice settlement.
func NewMarkInvoicePaidCommandHandler(uowFactory InvoiceUoWFactory) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command.
func (h MarkInvoicePaidCommandHandler) Handle(ctx context.Context, cmd MarkInvoicePaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inv, err := uow.InvoiceRepository().Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = inv.MarkPaid(cmd.PaymentMethod(), cmd.PaymentReference(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
