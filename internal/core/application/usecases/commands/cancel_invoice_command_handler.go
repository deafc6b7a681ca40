package commands

import (
	"context"
)

// CancelInvoiceCommandHandler handles invoice cancellation. Paid invoices
// refuse to cancel in the aggregate.
type CancelInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCancelInvoiceCommandHandler creates a handler for invoice cancellation.
func NewCancelInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CancelInvoiceCommandHandler {
	return CancelInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelInvoiceCommandHandler) Handle(ctx context.Context, cmd CancelInvoiceCommand) error {
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

	if err = inv.Cancel(); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
