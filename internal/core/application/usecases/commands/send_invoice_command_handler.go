package commands

import (
	"context"
	"time"
)

// SendInvoiceCommandHandler handles issuing a draft invoice: draft moves to
// pending and the issue date is re-stamped to the send moment.
type SendInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewSendInvoiceCommandHandler creates a handler for sending invoices.
func NewSendInvoiceCommandHandler(uowFactory InvoiceUoWFactory) SendInvoiceCommandHandler {
	return SendInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the send command.
func (h SendInvoiceCommandHandler) Handle(ctx context.Context, cmd SendInvoiceCommand) error {
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

	if err = inv.Send(time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
