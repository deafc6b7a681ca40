package commands

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/tasks"
)

// EscalateOverdueInvoicesCommandHandler sweeps unpaid invoices past their
// due date: each one is logged as a warning and fanned out as an
// invoice_overdue notification to the billing escalation roles. The sweep
// reads only; it never mutates the invoices it finds.
type EscalateOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
	dispatcher NotificationDispatcher
	runner     tasks.Runner
	logger     *slog.Logger
}

// NewEscalateOverdueInvoicesCommandHandler creates a handler for overdue
// invoice sweeps.
func NewEscalateOverdueInvoicesCommandHandler(
	uowFactory InvoiceUoWFactory,
	dispatcher NotificationDispatcher,
	runner tasks.Runner,
	logger *slog.Logger,
) EscalateOverdueInvoicesCommandHandler {
	return EscalateOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		runner:     runner,
		logger:     logger.With("component", "overdue_invoice_sweep"),
	}
}

// Handle processes the sweep command.
func (h EscalateOverdueInvoicesCommandHandler) Handle(
	ctx context.Context,
	cmd EscalateOverdueInvoicesCommand,
) error {
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

	overdue, err := uow.InvoiceRepository().GetAllOverdue(ctx, cmd.AsOf())
	if err != nil {
		return err
	}

	for _, inv := range overdue {
		h.logger.WarnContext(ctx, "Invoice overdue",
			"invoice_number", inv.InvoiceNumber(),
			"status", inv.Status().String(),
			"due_date", inv.DueDate().Format("2006-01-02"),
			"total", inv.Total())

		h.submitOverdueNotification(inv)
	}

	return nil
}

func (h EscalateOverdueInvoicesCommandHandler) submitOverdueNotification(inv *invoice.Invoice) {
	invoiceID := inv.ID()
	invoiceNumber := inv.InvoiceNumber()
	dueDate := inv.DueDate()

	h.runner.Submit("overdue notification", func(ctx context.Context) error {
		event := services.NotificationEvent{
			Type: notification.EventInvoiceOverdue,
			// No human triggered the sweep; a fresh id means no recipient
			// is excluded as the actor.
			ActorID: kernel.NewUUID(),
		}
		title := "Invoice Overdue"
		message := fmt.Sprintf("Invoice %s was due on %s", invoiceNumber, dueDate.Format("2006-01-02"))

		dispatchCmd, err := NewDispatchNotificationCommand(event, title, message, "invoice", invoiceID)
		if err != nil {
			return err
		}
		return h.dispatcher.Handle(ctx, dispatchCmd)
	})
}
