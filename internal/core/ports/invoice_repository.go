package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/invoice"
	"logistics/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates
// and their line items.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate with its items.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// JobHasInvoiceItem reports whether any invoice line item already
	// references the given job. This is the idempotency guard for
	// automatic draft invoice creation.
	JobHasInvoiceItem(ctx context.Context, jobID kernel.UUID) (bool, error)

	// GetAllOverdue retrieves unpaid invoices whose due date is in the past:
	// status draft or pending with dueDate before the given moment.
	GetAllOverdue(ctx context.Context, before time.Time) ([]*invoice.Invoice, error)
}
