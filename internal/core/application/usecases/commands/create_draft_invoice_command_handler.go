package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/ids"
)

// CreateDraftInvoiceCommandHandler generates the automatic draft invoice for
// a delivered job: one shipping-service line priced from the job's priority
// and weight, 20% tax, due in thirty days.
//
// The handler is idempotent per job: if any invoice line already references
// the job it returns without creating anything, so a job delivered twice is
// billed once.
type CreateDraftInvoiceCommandHandler struct {
	uowFactory DraftInvoiceUoWFactory
}

// NewCreateDraftInvoiceCommandHandler creates a handler for automatic draft
// invoice generation.
func NewCreateDraftInvoiceCommandHandler(uowFactory DraftInvoiceUoWFactory) CreateDraftInvoiceCommandHandler {
	return CreateDraftInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft invoice command.
func (h CreateDraftInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateDraftInvoiceCommand) error {
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

	billed, err := uow.InvoiceRepository().JobHasInvoiceItem(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if billed {
		return nil
	}

	j, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	draft, err := invoice.NewDraftForJob(
		kernel.NewUUID(),
		kernel.NewUUID(),
		ids.NewInvoiceNumber(now),
		j,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, draft); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
