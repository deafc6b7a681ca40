package commands

import (
	"context"
)

// UpdateInvoiceCommandHandler handles draft invoice edits. The aggregate
// refuses the edit for any non-draft status.
type UpdateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceCommandHandler creates a handler for invoice edits.
func NewUpdateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceCommandHandler {
	return UpdateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice edit command.
func (h UpdateInvoiceCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceCommand) error {
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

	if err = inv.ApplyUpdate(cmd.Patch()); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
